package engine

import (
	"strings"

	"github.com/thoreinstein/mdvars/internal/pattern"
)

// Result reports one substitution pass.
type Result struct {
	// Text is the input with every placeholder span replaced.
	Text string

	// Replaced counts placeholders that produced a value or a default.
	Replaced int

	// Missing counts placeholders that produced neither.
	Missing int
}

// Substitute replaces every placeholder in text with its resolved value
// from data. Resolution policy, in order:
//
//  1. A value that resolves and formats non-empty replaces the placeholder.
//     An empty string counts as missing so a blank frontmatter value cannot
//     silently erase a placeholder.
//  2. Otherwise a captured default is used verbatim. Defaults are opaque
//     text: never re-resolved, never formatted.
//  3. Otherwise the placeholder is missing and emits either
//     opts.MissingValueText or its original text, per
//     opts.PreserveOriginalOnMissing.
func Substitute(text string, data map[string]any, opts Options) Result {
	matches := pattern.Compile(opts.tokens()).Find(text)
	if len(matches) == 0 {
		return Result{Text: text}
	}

	var out strings.Builder
	out.Grow(len(text))

	res := Result{}
	last := 0
	for _, m := range matches {
		out.WriteString(text[last:m.Start])
		out.WriteString(replacementFor(m, data, opts, &res))
		last = m.End
	}
	out.WriteString(text[last:])

	res.Text = out.String()
	return res
}

func replacementFor(m pattern.Match, data map[string]any, opts Options, res *Result) string {
	if v, ok := lookup(data, m.Path, opts); ok {
		if s := formatValue(v, opts); s != "" {
			res.Replaced++
			return s
		}
	}

	if m.HasDefault {
		res.Replaced++
		return m.Default
	}

	res.Missing++
	if opts.PreserveOriginalOnMissing {
		return m.Text
	}
	return opts.MissingValueText
}
