// Package frontmatter provides the read and write side of the frontmatter
// block at the top of a text document.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end. The content between delimiters is parsed as YAML into a generic
// mapping (map[string]any); the remaining content after the closing
// delimiter is the document body. Both Unix (LF) and Windows (CRLF) line
// endings are handled.
//
// # Reading
//
//	data, perr := frontmatter.Parse(text)
//	body := frontmatter.Body(text)
//
// Parse never fails hard: a missing block or malformed YAML yields an empty
// mapping plus the parse error for diagnostic logging. Reads are therefore
// always safe, which matches how the engine consumes frontmatter: a broken
// block simply means every placeholder is missing.
//
// # Writing
//
//	text, err := frontmatter.Replace(text, data)
//
// Writes are strict: a value the YAML encoder cannot represent returns an
// error so the caller can abort before any destructive partial write.
package frontmatter
