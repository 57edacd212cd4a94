package commands

import (
	"log/slog"

	"github.com/thoreinstein/mdvars/internal/errors"
	"github.com/thoreinstein/mdvars/pkg/fileutil"
	"github.com/thoreinstein/mdvars/pkg/frontmatter"
)

// document is one loaded document: raw text plus its parsed frontmatter.
type document struct {
	path string
	text string
	data map[string]any
}

// loadDocument reads and parses a document. Frontmatter parse faults are
// logged and recovered as an empty mapping; only I/O failures are errors.
func loadDocument(path string) (*document, error) {
	raw, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.NewSystemError(err, "check the file path and permissions")
	}

	text := string(raw)
	data, perr := frontmatter.Parse(text)
	if perr != nil {
		slog.Debug("frontmatter parse failed, treating as empty", "path", path, "err", perr)
	}

	return &document{path: path, text: text, data: data}, nil
}

// body returns the document content after the frontmatter block.
func (d *document) body() string {
	return frontmatter.Body(d.text)
}

// hasFrontmatter reports whether the document opens with a frontmatter block.
func (d *document) hasFrontmatter() bool {
	return frontmatter.FindBlockEnd(d.text) > 0
}

// lineOffset returns the number of lines the frontmatter block occupies.
func (d *document) lineOffset() int {
	return frontmatter.LineOffset(d.text)
}
