package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mdvars/internal/engine"
	"github.com/thoreinstein/mdvars/internal/errors"
)

var (
	listJSON     bool
	listDataOnly bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	listCmd.Flags().BoolVar(&listDataOnly, "data-only", false, "include frontmatter leaves without placeholders")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "List every variable in a document with its status",
	Long: `List enumerates every distinct placeholder in the document body and
classifies it: exists (resolves to a value), has-default (unresolved but
carries a fallback), or missing. With --data-only, frontmatter leaves that
no placeholder references are appended as data-only entries.`,
	Example: `  # List placeholders with status
  mdvars list note.md

  # Include unreferenced frontmatter leaves
  mdvars list note.md --data-only

  # Machine-readable output
  mdvars list note.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	return listWithWriter(cmd.OutOrStdout(), args[0])
}

func listWithWriter(w io.Writer, path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	opts := engineOptions()
	if listDataOnly {
		opts.ShowDataOnly = true
	}

	vars := engine.Scan(doc.body(), doc.data, doc.lineOffset(), opts)

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(vars), "encoding variable list")
	}
	return writeTabular(w, vars)
}

var statusColors = map[engine.Status]*color.Color{
	engine.StatusExists:     color.New(color.FgGreen),
	engine.StatusHasDefault: color.New(color.FgYellow),
	engine.StatusMissing:    color.New(color.FgRed),
	engine.StatusDataOnly:   color.New(color.FgHiBlack),
}

func writeTabular(w io.Writer, vars []engine.Variable) error {
	if len(vars) == 0 {
		fmt.Fprintln(w, "No variables found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tVALUE\tPOSITION")
	for _, v := range vars {
		status := string(v.Status)
		if c, ok := statusColors[v.Status]; ok {
			status = c.Sprint(status)
		}

		value := v.Value
		if v.Status == engine.StatusHasDefault {
			value = v.Default + " (default)"
		}

		position := ""
		if v.Position != nil {
			position = fmt.Sprintf("%d:%d", v.Position.Line+1, v.Position.Column+1)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Name, status, value, position)
	}
	return errors.Wrap(tw.Flush(), "writing variable table")
}
