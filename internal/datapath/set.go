package datapath

// Set walks path through root, creating intermediate containers as needed,
// and assigns value at the terminal segment. It reports whether the
// mutation was applied.
//
// Plain segments that are missing, nil, or hold a non-mapping value are
// replaced by an empty mapping before descending (last-writer-wins, not a
// merge). Indexed segments force the identifier to hold a sequence, growing
// it with nil padding up to the index. A path containing a forbidden name,
// an empty segment, or an index above MaxIndex is refused before anything
// is touched, so a failed Set never leaves a partial write behind.
func Set(root map[string]any, path string, value any) bool {
	segs, ok := parsePath(path)
	if !ok || root == nil {
		return false
	}

	cur := root
	for _, seg := range segs[:len(segs)-1] {
		if seg.hasIndex {
			seq := ensureSequence(cur, seg.key, seg.index)
			child, ok := seq[seg.index].(map[string]any)
			if !ok {
				child = make(map[string]any)
				seq[seg.index] = child
			}
			cur = child
			continue
		}

		child, ok := cur[seg.key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			cur[seg.key] = child
		}
		cur = child
	}

	last := segs[len(segs)-1]
	if last.hasIndex {
		seq := ensureSequence(cur, last.key, last.index)
		seq[last.index] = value
		return true
	}

	cur[last.key] = value
	return true
}

// ensureSequence makes node[key] a sequence long enough to hold index and
// returns it. A non-sequence value at key is replaced by an empty sequence.
func ensureSequence(node map[string]any, key string, index int) []any {
	seq, ok := node[key].([]any)
	if !ok {
		seq = nil
	}
	for len(seq) <= index {
		seq = append(seq, nil)
	}
	node[key] = seq
	return seq
}
