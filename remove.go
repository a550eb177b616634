package rangetrie

import (
	"fmt"

	"github.com/bearxy123/rangetrie/internal/ivl"
)

// Remove removes the portion of each stored range that overlaps
// [start, start+length). Stored ranges not overlapping the request are
// untouched; a stored range whose overlap is strictly interior is split
// into two fresh nodes.
//
// Remove pre-reserves the nodes a split step needs before mutating
// anything for that step, so a heap-allocator failure during a split
// leaves the trie exactly as it was before that step: Remove returns
// ErrOutOfMemory and the trie keeps every range it had before the call,
// minus whatever earlier, already-committed steps removed.
func (t *Trie[V]) Remove(start, length uint64) error {
	if t == nil {
		return ErrNotInitialized
	}
	if length == 0 {
		return nil
	}

	return t.removeNode(&t.root, ivl.Range{Start: start, End: start + length})
}

// removeNode implements §4.2.5's recursive algorithm on the slot *w with
// remaining request k.
func (t *Trie[V]) removeNode(w **node[V], k ivl.Range) error {
	r := *w
	if r == nil {
		return nil
	}

	rRange := rangeOf(r)
	i := ivl.Intersect(rRange, k)

	var extraK ivl.Range
	spliced := false
	if !i.Empty() {
		var here, extraHere ivl.Range
		k, extraK = ivl.Cut(k, i)
		here, extraHere = ivl.Cut(rRange, i)

		if here.Empty() || here.End != rRange.End {
			// r's key would shift: splice it out of the tree and
			// reinsert the surviving pieces as fresh nodes from the
			// root. Reserve both potential nodes before touching
			// anything so a mid-split allocation failure can't leave
			// the trie half-spliced.
			needed := 0
			if !here.Empty() {
				needed++
			}
			if !extraHere.Empty() {
				needed++
			}

			reserved, err := t.reserve(needed)
			if err != nil {
				return err
			}

			spliceOut(w)
			spliced = true
			value := r.Value
			t.h.Free(r)
			t.size--

			if !here.Empty() {
				t.installReserved(&reserved, here, value)
			}
			if !extraHere.Empty() {
				t.installReserved(&reserved, extraHere, value)
			}
		} else {
			r.Start, r.End = here.Start, here.End

			if !extraHere.Empty() {
				reserved, err := t.reserve(1)
				if err != nil {
					return err
				}
				t.installReserved(&reserved, extraHere, r.Value)
			}
		}
	}

	// Recurse with whatever request pieces remain. After a splice the
	// slot holds r's replacement, which hasn't been checked yet, so the
	// slot itself is visited again; otherwise both of r's children are,
	// since an overlapping range can sit under either of them.
	for _, piece := range []ivl.Range{k, extraK} {
		if piece.Empty() {
			continue
		}
		slots := []**node[V]{&r.Child[0], &r.Child[1]}
		if spliced {
			slots = []**node[V]{w}
		}
		for _, s := range slots {
			if err := t.removeNode(s, piece); err != nil {
				return err
			}
		}
	}

	return nil
}

// reserve pre-allocates n fresh nodes from the heap, returning
// ErrOutOfMemory (and releasing any it did manage to get) if the heap
// can't supply all of them.
func (t *Trie[V]) reserve(n int) ([]*node[V], error) {
	got := make([]*node[V], 0, n)
	for len(got) < n {
		nd, ok := t.h.Alloc()
		if !ok {
			for _, nd := range got {
				t.h.Free(nd)
			}
			return nil, ErrOutOfMemory
		}
		got = append(got, nd)
	}
	return got, nil
}

// installReserved pops one node off reserved, fills it with r/value, and
// inserts it into the trie from the root.
func (t *Trie[V]) installReserved(reserved *[]*node[V], r ivl.Range, value V) {
	rs := *reserved
	if len(rs) == 0 {
		panic(fmt.Sprintf("rangetrie: reserve() under-provisioned for range %v", r))
	}
	n := rs[len(rs)-1]
	*reserved = rs[:len(rs)-1]

	n.Start, n.End, n.Value = r.Start, r.End, value
	n.Child[0], n.Child[1] = nil, nil

	insertNode(&t.root, n)
	t.size++
}

// spliceOut implements the node-delete primitive of §4.2.5: detach the
// node currently in slot *w while preserving every other node reachable
// through it.
func spliceOut[V any](w **node[V]) {
	r := *w
	if r == nil {
		return
	}

	switch {
	case r.Child[0] == nil:
		*w = r.Child[1]
	case r.Child[1] == nil:
		*w = r.Child[0]
	default:
		// Both children present: child[0] is promoted to take r's slot
		// and r's pivot bit, but it must first be spliced out of its
		// own old position (it can't be in two places at once), and
		// r's child[1] subtree must be re-attached under the promoted
		// node so it isn't dropped.
		promoted := r.Child[0]
		rightSubtree := r.Child[1]
		pivot := r.PivotBit

		spliceOut(&r.Child[0])

		promoted.PivotBit = pivot
		promoted.Child[0] = r.Child[0]
		promoted.Child[1] = rightSubtree
		*w = promoted
	}
}
