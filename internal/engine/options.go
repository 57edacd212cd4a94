// Package engine implements on-demand placeholder resolution over a
// document body: substitution of frontmatter values into placeholder spans
// and enumeration of every distinct variable with a status classification.
package engine

import "github.com/thoreinstein/mdvars/internal/pattern"

// Default values for the user-facing options.
const (
	DefaultMissingValueText   = "[MISSING]"
	DefaultArrayJoinSeparator = ", "
)

// Options controls matching, lookup and replacement policy. The zero value
// is not useful; start from DefaultOptions.
type Options struct {
	// OpenDelimiter, CloseDelimiter and DefaultSeparator are the three
	// placeholder tokens. Unusable tokens fall back to {{ }} : inside the
	// pattern compiler.
	OpenDelimiter    string
	CloseDelimiter   string
	DefaultSeparator string

	// MissingValueText replaces placeholders that resolve to nothing when
	// PreserveOriginalOnMissing is off.
	MissingValueText string

	// CaseInsensitive enables case-insensitive key lookup. An exact-case
	// match always wins.
	CaseInsensitive bool

	// SupportNestedProperties enables dotted/indexed path traversal. When
	// off, the whole placeholder name is looked up as a single flat key.
	SupportNestedProperties bool

	// ArrayJoinSeparator joins sequence elements when a placeholder
	// resolves to a sequence.
	ArrayJoinSeparator string

	// PreserveOriginalOnMissing leaves the placeholder text untouched when
	// it resolves to nothing, instead of emitting MissingValueText.
	PreserveOriginalOnMissing bool

	// ShowDataOnly makes Scan append a variable for every frontmatter leaf
	// that has no placeholder in the body.
	ShowDataOnly bool
}

// DefaultOptions returns the built-in option set: {{name}} syntax with ":"
// defaults, nested paths enabled, case-sensitive lookup, and missing
// placeholders preserved as-is.
func DefaultOptions() Options {
	return Options{
		OpenDelimiter:             pattern.DefaultOpen,
		CloseDelimiter:            pattern.DefaultClose,
		DefaultSeparator:          pattern.DefaultSeparator,
		MissingValueText:          DefaultMissingValueText,
		SupportNestedProperties:   true,
		ArrayJoinSeparator:        DefaultArrayJoinSeparator,
		PreserveOriginalOnMissing: true,
	}
}

// tokens extracts the pattern-compiler token tuple.
func (o Options) tokens() pattern.Tokens {
	return pattern.Tokens{
		Open:      o.OpenDelimiter,
		Close:     o.CloseDelimiter,
		Separator: o.DefaultSeparator,
	}
}

// joinSeparator returns the configured sequence join separator, defaulted.
func (o Options) joinSeparator() string {
	if o.ArrayJoinSeparator == "" {
		return DefaultArrayJoinSeparator
	}
	return o.ArrayJoinSeparator
}
