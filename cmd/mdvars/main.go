// Package main is the entry point for the mdvars CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/mdvars/cmd/mdvars/commands"
	"github.com/thoreinstein/mdvars/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	code := errors.ExitUser
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
	}
	os.Exit(code)
}
