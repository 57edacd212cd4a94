package commands

import (
	"fmt"
	"io"
	"maps"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mdvars/internal/datapath"
	"github.com/thoreinstein/mdvars/internal/engine"
	"github.com/thoreinstein/mdvars/internal/errors"
	"github.com/thoreinstein/mdvars/pkg/fileutil"
	"github.com/thoreinstein/mdvars/pkg/frontmatter"
)

var setRaw bool

func init() {
	setCmd.Flags().BoolVar(&setRaw, "raw", false, "store VALUE as a string without YAML interpretation")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set FILE PATH VALUE",
	Short: "Write a single frontmatter value",
	Long: `Set walks PATH through the document's frontmatter, creating intermediate
mappings and sequences as needed, assigns VALUE at the terminal segment, and
atomically rewrites the document with a freshly serialized block.

VALUE is interpreted as a YAML scalar ("30" becomes a number, "true" a
boolean) unless --raw keeps it a plain string. Paths containing forbidden
property names or sequence indices above 1000 are refused without touching
the document.`,
	Example: `  mdvars set note.md server.ip 10.0.0.2
  mdvars set note.md ports[2] 443
  mdvars set note.md title --raw "2026: a retrospective"`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	return setWithWriter(cmd.OutOrStdout(), args[0], args[1], args[2])
}

func setWithWriter(w io.Writer, file, path, rawValue string) error {
	doc, err := loadDocument(file)
	if err != nil {
		return err
	}

	// Snapshot the key set before mutating; the write-back below is only
	// valid against a document whose frontmatter still has these keys.
	snapshot := maps.Clone(doc.data)

	if !datapath.Set(doc.data, path, parseScalar(rawValue)) {
		return errors.NewUserError(
			errors.Newf("path %q is invalid or forbidden", path),
			"paths are dotted identifiers with optional [index] segments")
	}

	// Serialize before touching the file: a value YAML cannot represent
	// must abort while the document is still intact.
	newText, err := frontmatter.Replace(doc.text, doc.data)
	if err != nil {
		return errors.NewUserError(errors.Wrap(errors.ErrSerialize, err.Error()),
			"the value cannot be stored in frontmatter")
	}

	// The document may have been edited between our read and this write.
	// Re-parse the live file and compare key sets; a mismatch means the
	// write would be applied against stale assumptions.
	live, err := loadDocument(file)
	if err != nil {
		return err
	}
	if !engine.SameKeySet(live.data, snapshot) {
		return errors.NewUserError(errors.ErrStaleDocument, "re-run the command")
	}

	if err := fileutil.AtomicWriteFile(file, []byte(newText), 0o644); err != nil {
		return errors.NewSystemError(err, "check file permissions")
	}

	fmt.Fprintf(w, "%s: set %s\n", file, path)
	return nil
}

// parseScalar interprets a CLI value argument. YAML scalar parsing gives
// numbers, booleans and null their natural types; --raw skips it.
func parseScalar(s string) any {
	if setRaw {
		return s
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}
