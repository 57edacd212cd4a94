package engine

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/thoreinstein/mdvars/internal/datapath"
	"github.com/thoreinstein/mdvars/internal/pattern"
)

// Status classifies a scanned variable.
type Status string

const (
	// StatusExists means the placeholder resolves to a non-empty value.
	StatusExists Status = "exists"

	// StatusHasDefault means the placeholder resolves to nothing but
	// carries a fallback.
	StatusHasDefault Status = "has-default"

	// StatusMissing means the placeholder resolves to nothing and has no
	// fallback.
	StatusMissing Status = "missing"

	// StatusDataOnly marks a frontmatter leaf with no placeholder in the
	// body.
	StatusDataOnly Status = "data-only"
)

// Position is the zero-based line and column of a placeholder's first
// occurrence. Line already includes the frontmatter line offset.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Variable is one scanned variable. Constructed per scan, never mutated.
type Variable struct {
	Name     string    `json:"name"`
	Status   Status    `json:"status"`
	Value    string    `json:"value,omitempty"`
	Default  string    `json:"default,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// reservedKeys are frontmatter keys owned by host-editor metadata
// conventions; the data-only walk skips them at the top level.
var reservedKeys = map[string]struct{}{
	"aliases":    {},
	"tags":       {},
	"cssclasses": {},
}

// Scan enumerates every distinct placeholder in body, classifying each
// against data. Duplicate paths are deduplicated, first occurrence wins.
// lineOffset is the number of lines the frontmatter block occupies, so
// positions refer to the full document rather than the body slice. With
// opts.ShowDataOnly, every frontmatter leaf that no placeholder references
// is appended as a data-only variable.
func Scan(body string, data map[string]any, lineOffset int, opts Options) []Variable {
	matches := pattern.Compile(opts.tokens()).Find(body)

	vars := make([]Variable, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		if _, dup := seen[m.Path]; dup {
			continue
		}
		seen[m.Path] = struct{}{}
		vars = append(vars, classify(m, body, data, lineOffset, opts))
	}

	if opts.ShowDataOnly {
		vars = append(vars, dataOnlyVariables(data, seen, opts)...)
	}
	return vars
}

func classify(m pattern.Match, body string, data map[string]any, lineOffset int, opts Options) Variable {
	v := Variable{
		Name:     m.Path,
		Position: positionOf(body, m.Start, lineOffset),
	}
	if m.HasDefault {
		v.Default = m.Default
	}

	if val, ok := lookup(data, m.Path, opts); ok {
		if s := formatValue(val, opts); s != "" {
			v.Status = StatusExists
			v.Value = s
			return v
		}
	}

	if m.HasDefault {
		v.Status = StatusHasDefault
		return v
	}
	v.Status = StatusMissing
	return v
}

// positionOf converts a byte offset in body to a document position.
func positionOf(body string, offset, lineOffset int) *Position {
	prefix := body[:offset]
	line := strings.Count(prefix, "\n")
	col := offset
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		col = offset - i - 1
	}
	return &Position{Line: line + lineOffset, Column: col}
}

// dataOnlyVariables walks every leaf of data and returns a variable for
// each path not already seen as a placeholder. Traversal keeps a visited
// set keyed on container identity so shared or self-referential subtrees
// cannot recurse forever.
func dataOnlyVariables(data map[string]any, seen map[string]struct{}, opts Options) []Variable {
	var out []Variable
	visited := make(map[uintptr]struct{})

	var walk func(prefix string, node any, topLevel bool)
	walk = func(prefix string, node any, topLevel bool) {
		switch n := node.(type) {
		case map[string]any:
			if !enter(visited, reflect.ValueOf(n).Pointer()) {
				return
			}
			keys := make([]string, 0, len(n))
			for k := range n {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if datapath.Forbidden(k) {
					continue
				}
				if topLevel {
					if _, reserved := reservedKeys[strings.ToLower(k)]; reserved {
						continue
					}
				}
				walk(joinPath(prefix, k), n[k], false)
			}
		case []any:
			if len(n) > 0 && !enter(visited, reflect.ValueOf(n).Pointer()) {
				return
			}
			for i, el := range n {
				walk(fmt.Sprintf("%s[%d]", prefix, i), el, false)
			}
		default:
			if prefix == "" {
				return
			}
			if _, dup := seen[prefix]; dup {
				return
			}
			out = append(out, Variable{
				Name:   prefix,
				Status: StatusDataOnly,
				Value:  formatValue(node, opts),
			})
		}
	}

	walk("", data, true)
	return out
}

// enter records a container identity, reporting false when it was already
// on the current walk.
func enter(visited map[uintptr]struct{}, ptr uintptr) bool {
	if _, ok := visited[ptr]; ok {
		return false
	}
	visited[ptr] = struct{}{}
	return true
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// SameKeySet reports whether two data snapshots expose the same top-level
// key set. Hosts that scanned variables earlier and are about to write back
// must re-parse the live document and verify the key sets still match; a
// mismatch means the document changed underneath the operation and the
// write has to be aborted instead of applied against stale assumptions.
func SameKeySet(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
