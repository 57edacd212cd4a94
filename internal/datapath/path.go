// Package datapath resolves and mutates dotted/indexed paths inside the
// structured data tree parsed from frontmatter.
//
// A path is a dot-separated sequence of segments. Each segment is either a
// plain identifier ("server") or an indexed identifier ("ports[2]"). The
// data tree is the natural yaml.v3 decoding of a mapping: map[string]any,
// []any, scalars and nil.
package datapath

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxIndex is the hard ceiling on sequence indices. Larger indices are
// refused on both the read and write side so a typo'd or malicious index
// can never grow a sequence without bound.
const MaxIndex = 1000

// forbiddenKeys are property names that never resolve and never mutate,
// regardless of case sensitivity. They shield the mapping implementation
// from prototype-pollution style key injection.
var forbiddenKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// Forbidden reports whether name is a forbidden property name.
// The check is case-insensitive.
func Forbidden(name string) bool {
	_, ok := forbiddenKeys[strings.ToLower(name)]
	return ok
}

// indexedSegment matches "identifier[index]" with a single trailing index.
var indexedSegment = regexp.MustCompile(`^(.+)\[(\d+)\]$`)

// segment is one parsed path element.
type segment struct {
	key      string
	index    int
	hasIndex bool
}

// parsePath splits a dotted path into segments. It returns ok=false when
// any segment is empty, names a forbidden key, or carries an index above
// MaxIndex. Rejecting up front keeps mutation all-or-nothing.
func parsePath(path string) ([]segment, bool) {
	if path == "" {
		return nil, false
	}

	parts := strings.Split(path, ".")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, false
		}

		seg := segment{key: part}
		if m := indexedSegment.FindStringSubmatch(part); m != nil {
			idx, err := strconv.Atoi(m[2])
			if err != nil || idx > MaxIndex {
				return nil, false
			}
			seg.key = m[1]
			seg.index = idx
			seg.hasIndex = true
		}

		if Forbidden(seg.key) {
			return nil, false
		}
		segs = append(segs, seg)
	}
	return segs, true
}
