package datapath

import "strings"

// resolveKey looks up name in node if node is a mapping. Forbidden names
// never resolve. An exact-case match wins; with caseInsensitive enabled the
// lexicographically smallest key that folds to the same name is used, so
// lookups stay deterministic when keys differ only by case.
func resolveKey(node any, name string, caseInsensitive bool) (any, bool) {
	if Forbidden(name) {
		return nil, false
	}

	m, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}

	if v, ok := m[name]; ok {
		return v, true
	}

	if caseInsensitive {
		best := ""
		found := false
		for k := range m {
			if strings.EqualFold(k, name) && (!found || k < best) {
				best = k
				found = true
			}
		}
		if found {
			return m[best], true
		}
	}

	return nil, false
}

// ResolveKey looks up name as a single flat key in root, with no path
// splitting. Used when nested property support is disabled.
func ResolveKey(root map[string]any, name string, caseInsensitive bool) (any, bool) {
	return resolveKey(root, name, caseInsensitive)
}

// Resolve walks path through root and returns the value found at the end.
// The value is returned as-is, sequences and mappings included. The second
// return is false when any segment fails to resolve: a missing key, a
// non-sequence where an index was given, an out-of-bounds index, a forbidden
// name, or a nil intermediate node.
func Resolve(root map[string]any, path string, caseInsensitive bool) (any, bool) {
	segs, ok := parsePath(path)
	if !ok {
		return nil, false
	}

	var cur any = root
	for i, seg := range segs {
		if cur == nil {
			return nil, false
		}

		v, ok := resolveKey(cur, seg.key, caseInsensitive)
		if !ok {
			return nil, false
		}

		if seg.hasIndex {
			seq, ok := v.([]any)
			if !ok || seg.index >= len(seq) {
				return nil, false
			}
			v = seq[seg.index]
		}

		if i < len(segs)-1 && v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}
