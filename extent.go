package rangetrie

import "github.com/bearxy123/rangetrie/internal/ivl"

// Extent returns the smallest start and the largest end across all
// stored ranges, or (0, 0) if the trie is empty.
//
// A node's own key isn't ordered relative to its children's subtrees
// (see the note on RangeLookup in iter.go): insert keeps whichever key
// was already occupying a slot there and demotes the other purely by
// its pivot bit, so a child can hold a larger End than its parent, or a
// smaller Start. Extent can't get away with descending a single child
// spine the way §4.2.6 does (flagged as a reference bug in §9 item 4);
// it visits every node, the same way All/RangeLookup do.
func (t *Trie[V]) Extent() (min, max uint64) {
	if t == nil || t.root == nil {
		return 0, 0
	}

	var all []ivl.Range
	collectAll(t.root, &all)

	min, max = all[0].Start, all[0].End
	for _, r := range all[1:] {
		if r.Start < min {
			min = r.Start
		}
		if r.End > max {
			max = r.End
		}
	}
	return min, max
}
