// Package pattern compiles the placeholder matcher from user-configurable
// delimiter tokens.
//
// A placeholder is OPEN ws PATH ws (SEP ws DEFAULT ws)? CLOSE, where PATH is
// one or more of letters, digits, underscore, dot, hyphen and square
// brackets, and DEFAULT is any text up to (not including) the next CLOSE.
// Matching is left-to-right and non-overlapping. Tokens are matched
// literally; regex metacharacters in user-chosen delimiters are escaped.
package pattern

import (
	"regexp"
	"sync"
)

// Built-in default tokens, used whenever a configured token is unusable.
const (
	DefaultOpen      = "{{"
	DefaultClose     = "}}"
	DefaultSeparator = ":"
)

// maxTokenLen bounds a single configured token. Oversized tokens fall back
// to the built-in defaults instead of erroring, so configuration can never
// break the pipeline.
const maxTokenLen = 10

// Tokens holds the three configurable delimiter tokens.
type Tokens struct {
	Open      string
	Close     string
	Separator string
}

// Default returns the built-in token set.
func Default() Tokens {
	return Tokens{Open: DefaultOpen, Close: DefaultClose, Separator: DefaultSeparator}
}

// Valid reports whether every token is non-empty, within bounds, and the
// open and close delimiters differ. Invalid tokens are not an error; Compile
// silently substitutes the built-in defaults for them.
func (t Tokens) Valid() bool {
	for _, tok := range []string{t.Open, t.Close, t.Separator} {
		if tok == "" || len(tok) > maxTokenLen {
			return false
		}
	}
	return t.Open != t.Close
}

// Match is one located placeholder occurrence in a text.
type Match struct {
	// Path is the dotted/indexed variable path between the delimiters.
	Path string

	// Default is the captured fallback text, valid only when HasDefault.
	Default string

	// HasDefault reports whether a separator and default were present.
	HasDefault bool

	// Start and End are the byte offsets of the full placeholder, End exclusive.
	Start int
	End   int

	// Text is the full matched placeholder, delimiters included.
	Text string
}

// Matcher finds placeholders in text. Safe for concurrent use.
type Matcher struct {
	re *regexp.Regexp
}

var cache = struct {
	sync.Mutex
	m map[Tokens]*Matcher
}{m: make(map[Tokens]*Matcher)}

// Compile returns a matcher for the given tokens, memoized by the token
// 3-tuple. Invalid tokens silently compile the built-in defaults.
func Compile(t Tokens) *Matcher {
	if !t.Valid() {
		t = Default()
	}

	cache.Lock()
	defer cache.Unlock()
	if m, ok := cache.m[t]; ok {
		return m
	}
	m := compile(t)
	cache.m[t] = m
	return m
}

// ClearCache drops all memoized matchers. Callers invoke this after a
// configuration change; it only affects performance, never correctness.
func ClearCache() {
	cache.Lock()
	defer cache.Unlock()
	cache.m = make(map[Tokens]*Matcher)
}

func compile(t Tokens) *Matcher {
	expr := regexp.QuoteMeta(t.Open) +
		`\s*([A-Za-z0-9_.\-\[\]]+)\s*` +
		`(?:` + regexp.QuoteMeta(t.Separator) + `\s*(.*?)\s*)?` +
		regexp.QuoteMeta(t.Close)

	re, err := regexp.Compile(expr)
	if err != nil {
		// QuoteMeta makes the tokens literal, so this only trips on a
		// broken built-in pattern. Recompile the defaults.
		re = regexp.MustCompile(regexp.QuoteMeta(DefaultOpen) +
			`\s*([A-Za-z0-9_.\-\[\]]+)\s*` +
			`(?:` + regexp.QuoteMeta(DefaultSeparator) + `\s*(.*?)\s*)?` +
			regexp.QuoteMeta(DefaultClose))
	}
	return &Matcher{re: re}
}

// Find returns every placeholder in text in document order. Matches never
// overlap.
func (m *Matcher) Find(text string) []Match {
	idxs := m.re.FindAllStringSubmatchIndex(text, -1)
	if len(idxs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(idxs))
	for _, idx := range idxs {
		match := Match{
			Path:  text[idx[2]:idx[3]],
			Start: idx[0],
			End:   idx[1],
			Text:  text[idx[0]:idx[1]],
		}
		if idx[4] >= 0 {
			match.Default = text[idx[4]:idx[5]]
			match.HasDefault = true
		}
		matches = append(matches, match)
	}
	return matches
}
