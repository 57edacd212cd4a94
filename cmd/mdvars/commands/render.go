package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mdvars/internal/engine"
	"github.com/thoreinstein/mdvars/internal/errors"
	"github.com/thoreinstein/mdvars/pkg/fileutil"
	"github.com/thoreinstein/mdvars/pkg/frontmatter"
)

var (
	renderOutput      string
	renderInPlace     bool
	renderStrict      bool
	renderMissingText string
	renderKeepMissing bool
	renderBodyOnly    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write the result to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderInPlace, "in-place", false, "rewrite the input file with placeholders resolved")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail when any placeholder is missing")
	renderCmd.Flags().StringVar(&renderMissingText, "missing", "", "text to substitute for missing placeholders")
	renderCmd.Flags().BoolVar(&renderKeepMissing, "keep-missing", false, "leave missing placeholders untouched (default behavior unless --missing is given)")
	renderCmd.Flags().BoolVar(&renderBodyOnly, "body-only", false, "emit only the body, without the frontmatter block")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Substitute frontmatter values into a document's placeholders",
	Long: `Render reads a document, resolves every placeholder in its body against
the frontmatter block, and emits the result.

Missing placeholders are left untouched by default. Use --missing to
substitute fixed text for them, or --strict to fail instead.`,
	Example: `  # Print note.md with placeholders resolved
  mdvars render note.md

  # Resolve in place, replacing missing placeholders with a marker
  mdvars render note.md --in-place --missing '[unset]'

  # Fail (exit 1) if anything is unresolved
  mdvars render note.md --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	return renderWithWriter(cmd.OutOrStdout(), args[0])
}

func renderWithWriter(w io.Writer, path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	opts := engineOptions()
	if renderMissingText != "" && !renderKeepMissing {
		opts.MissingValueText = renderMissingText
		opts.PreserveOriginalOnMissing = false
	}

	res := engine.Substitute(doc.body(), doc.data, opts)
	slog.Debug("substitution complete",
		"path", path, "replaced", res.Replaced, "missing", res.Missing)

	if renderStrict && res.Missing > 0 {
		return errors.NewUserError(
			errors.Newf("%d placeholder(s) unresolved", res.Missing),
			"run: mdvars list "+path)
	}

	out := res.Text
	if !renderBodyOnly {
		out = doc.text[:frontmatter.FindBlockEnd(doc.text)] + res.Text
	}

	switch {
	case renderInPlace:
		if err := fileutil.AtomicWriteFile(path, []byte(out), 0o644); err != nil {
			return errors.NewSystemError(err, "check file permissions")
		}
	case renderOutput != "":
		if err := fileutil.AtomicWriteFile(renderOutput, []byte(out), 0o644); err != nil {
			return errors.NewSystemError(err, "check the output path")
		}
	default:
		fmt.Fprint(w, out)
	}
	return nil
}
