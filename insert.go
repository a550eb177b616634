package rangetrie

import "github.com/bearxy123/rangetrie/internal/ivl"

// Insert adds a fresh entry for [start, start+length) mapped to value.
// length must be > 0, and the range must be disjoint from every range
// already stored (the trie does not check this; see package doc).
//
// Insert reports whether the node could be allocated. On heap-allocator
// exhaustion, Insert silently does nothing and returns false; a caller
// that must know whether the insert took hold should follow up with
// Lookup.
func (t *Trie[V]) Insert(start, length uint64, value V) (ok bool) {
	if t == nil || length == 0 {
		return false
	}

	n, ok := t.newNode(ivl.Range{Start: start, End: start + length}, value)
	if !ok {
		return false
	}

	insertNode(&t.root, n)
	t.size++
	return true
}

// insertNode places n into the subtree rooted at *w, per §4.2.2: if the
// slot is empty, n goes there. Otherwise compare n's key against the
// node already occupying the slot; whichever key's critical bit is
// lower (closer to the leaves) keeps the slot, and the other descends
// into the appropriate child.
func insertNode[V any](w **node[V], n *node[V]) {
	r := *w
	if r == nil {
		*w = n
		return
	}

	diff := r.End ^ n.End
	m, differ := msb(diff)

	if differ && m > int(r.PivotBit) {
		// n belongs strictly inside r's subtree.
		insertNode(&r.Child[bitAt(n.End, r.PivotBit)], n)
		return
	}

	// n's pivot dominates: it takes r's slot, and r descends into
	// whichever of n's two new children its own key routes to.
	pivot := uint8(0)
	if differ {
		pivot = uint8(m)
	}
	n.PivotBit = pivot
	n.Child[0], n.Child[1] = nil, nil
	*w = n
	insertNode(&n.Child[bitAt(r.End, pivot)], r)
}
