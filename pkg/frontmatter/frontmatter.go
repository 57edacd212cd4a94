// Package frontmatter locates, parses and serializes the YAML frontmatter
// block at the top of a document.
package frontmatter

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// FindBlockEnd returns the length of the frontmatter block at the start of
// text, delimiters included. The block opens with a line that is exactly
// "---" at offset 0 and closes at the next line that is exactly "---"; the
// closing line's trailing newline is consumed when present. Both LF and
// CRLF line endings are recognized. A document that does not begin with an
// opening "---" line, or that never closes the block, has a zero-length
// block and is all body.
func FindBlockEnd(text string) int {
	_, end := splitBlock(text)
	return end
}

// Body returns the document content after the frontmatter block.
func Body(text string) string {
	return text[FindBlockEnd(text):]
}

// LineOffset returns the number of lines occupied by the frontmatter block,
// i.e. the line number on which the body starts.
func LineOffset(text string) int {
	return strings.Count(text[:FindBlockEnd(text)], "\n")
}

// Parse extracts and parses the frontmatter block of text into a mapping.
// Parsing is best-effort: a document without frontmatter, or with a block
// that is not valid YAML, yields an empty mapping and the underlying parse
// error for diagnostics. The returned mapping is never nil and the error
// never indicates data loss; callers log it and move on.
func Parse(text string) (map[string]any, error) {
	inner, end := splitBlock(text)
	data := make(map[string]any)
	if end == 0 || strings.TrimSpace(inner) == "" {
		return data, nil
	}

	if err := yaml.Unmarshal([]byte(inner), &data); err != nil {
		return make(map[string]any), errors.Wrap(err, "parsing frontmatter")
	}
	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}

// SerializeBlock renders data as a complete frontmatter block, opening and
// closing "---" lines included. A value the YAML encoder cannot represent
// surfaces as an error; this path only runs on explicit writes and the
// caller must get the chance to abort instead of losing data.
func SerializeBlock(data map[string]any) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	if err := encodeYAML(&buf, data); err != nil {
		return "", errors.Wrap(err, "serializing frontmatter")
	}

	buf.WriteString("---\n")
	return buf.String(), nil
}

// encodeYAML writes data to buf as YAML. The yaml package panics on values
// it cannot represent, such as functions or channels, so the panic is
// converted into an ordinary error here.
func encodeYAML(buf *bytes.Buffer, data map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("%v", r)
		}
	}()

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

// Replace swaps the document's frontmatter block for a freshly serialized
// one and returns the new document text. A document without an existing
// block gets the new block prepended.
func Replace(text string, data map[string]any) (string, error) {
	block, err := SerializeBlock(data)
	if err != nil {
		return "", err
	}
	return block + text[FindBlockEnd(text):], nil
}

// splitBlock returns the YAML content strictly between the two "---"
// markers and the end offset of the whole block. end is 0 when there is no
// block.
func splitBlock(text string) (inner string, end int) {
	innerStart := 0
	switch {
	case strings.HasPrefix(text, "---\n"):
		innerStart = 4
	case strings.HasPrefix(text, "---\r\n"):
		innerStart = 5
	default:
		return "", 0
	}

	pos := innerStart
	for pos <= len(text) {
		lineEnd := strings.Index(text[pos:], "\n")
		var line string
		var next int
		if lineEnd == -1 {
			line = text[pos:]
			next = len(text)
		} else {
			line = text[pos : pos+lineEnd]
			next = pos + lineEnd + 1
		}

		if strings.TrimSuffix(line, "\r") == "---" {
			return text[innerStart:pos], next
		}
		if lineEnd == -1 {
			break
		}
		pos = next
	}
	return "", 0
}
