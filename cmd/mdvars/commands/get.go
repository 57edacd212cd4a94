package commands

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mdvars/internal/datapath"
	"github.com/thoreinstein/mdvars/internal/encode"
	"github.com/thoreinstein/mdvars/internal/engine"
	"github.com/thoreinstein/mdvars/internal/errors"
)

var getOutput string

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "raw",
		"output format: raw, yaml, json, toml")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get FILE [PATH]",
	Short: "Resolve a single frontmatter value",
	Long: `Get resolves one dotted/indexed path against the document's frontmatter
and prints the value. Without a PATH argument it opens an interactive
picker over every variable found in the document.

Raw output uses the same formatting as substitution (sequences joined,
mappings as compact JSON); yaml, json and toml render the structured
value instead.`,
	Example: `  mdvars get note.md server.ip
  mdvars get note.md ports[0]
  mdvars get note.md server --output yaml

  # Pick a variable interactively
  mdvars get note.md`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 2 {
		path = args[1]
	}
	return getWithWriter(cmd.OutOrStdout(), args[0], path)
}

func getWithWriter(w io.Writer, file, path string) error {
	doc, err := loadDocument(file)
	if err != nil {
		return err
	}
	opts := engineOptions()

	if path == "" {
		path, err = pickVariable(doc, opts)
		if err != nil {
			return err
		}
		if path == "" {
			return nil // aborted picker
		}
	}

	value, ok := resolveValue(doc.data, path, opts)
	if !ok {
		if !doc.hasFrontmatter() {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNoFrontmatter, "in %s", file),
				"the document has no frontmatter to resolve "+path+" against")
		}
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "%s in %s", path, file),
			"run: mdvars list "+file+" --data-only")
	}

	if getOutput == "" || getOutput == "raw" {
		fmt.Fprintln(w, engine.FormatValue(value, opts))
		return nil
	}

	format, err := encode.ParseFormat(getOutput)
	if err != nil {
		return errors.NewUserError(err, "use one of: raw, yaml, json, toml")
	}
	out, err := encode.Value(value, format)
	if err != nil {
		return errors.NewUserError(err, "try --output yaml for non-mapping values")
	}
	fmt.Fprint(w, out)
	return nil
}

// resolveValue mirrors the engine's lookup policy for single-value reads.
func resolveValue(data map[string]any, path string, opts engine.Options) (any, bool) {
	if opts.SupportNestedProperties {
		return datapath.Resolve(data, path, opts.CaseInsensitive)
	}
	return datapath.ResolveKey(data, path, opts.CaseInsensitive)
}

// pickVariable opens a fuzzy picker over every scanned variable and returns
// the chosen path. An aborted picker returns "" with no error.
func pickVariable(doc *document, opts engine.Options) (string, error) {
	scanOpts := opts
	scanOpts.ShowDataOnly = true
	vars := engine.Scan(doc.body(), doc.data, doc.lineOffset(), scanOpts)
	if len(vars) == 0 {
		return "", errors.NewUserError(errors.ErrNotFound, "the document has no variables")
	}

	idx, err := fuzzyfinder.Find(
		vars,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", vars[i].Name, vars[i].Status)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			v := vars[i]
			preview := fmt.Sprintf("Name: %s\nStatus: %s\nValue: %s", v.Name, v.Status, v.Value)
			if v.Default != "" {
				preview += "\nDefault: " + v.Default
			}
			if v.Position != nil {
				preview += fmt.Sprintf("\nPosition: %d:%d", v.Position.Line+1, v.Position.Column+1)
			}
			return preview
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}
	return vars[idx].Name, nil
}
