package rangetrie

import (
	"iter"
	"slices"

	"github.com/bearxy123/rangetrie/internal/ivl"
)

// RangeLookup invokes visit once per stored range whose intersection
// with [start, start+length) is non-empty, in ascending End order.
//
// The trie's internal node ordering doesn't by itself guarantee an
// in-order walk (a node's own key isn't necessarily ordered between its
// two children's subtrees — see DESIGN.md), so RangeLookup collects the
// overlapping hits during a full traversal and sorts them before
// invoking visit, which satisfies the completeness-and-order contract
// regardless of how the tree happens to be shaped.
func (t *Trie[V]) RangeLookup(start, length uint64, visit func(start, length uint64)) {
	if t == nil || length == 0 {
		return
	}

	q := ivl.Range{Start: start, End: start + length}
	var hits []ivl.Range
	collectOverlaps(t.root, q, &hits)

	slices.SortFunc(hits, func(a, b ivl.Range) int {
		switch {
		case a.End < b.End:
			return -1
		case a.End > b.End:
			return 1
		default:
			return 0
		}
	})

	for _, h := range hits {
		visit(h.Start, h.Span())
	}
}

func collectOverlaps[V any](n *node[V], q ivl.Range, hits *[]ivl.Range) {
	if n == nil {
		return
	}
	if i := ivl.Intersect(rangeOf(n), q); !i.Empty() {
		*hits = append(*hits, rangeOf(n))
	}
	collectOverlaps(n.Child[0], q, hits)
	collectOverlaps(n.Child[1], q, hits)
}

// All returns an iterator over every stored (start, length) pair in
// ascending End order, the Go-idiomatic counterpart to RangeLookup for
// callers that want a range module spanning every stored entry.
func (t *Trie[V]) All() iter.Seq2[uint64, uint64] {
	return func(yield func(start, length uint64) bool) {
		if t == nil || t.root == nil {
			return
		}

		var all []ivl.Range
		collectAll(t.root, &all)
		slices.SortFunc(all, func(a, b ivl.Range) int {
			switch {
			case a.End < b.End:
				return -1
			case a.End > b.End:
				return 1
			default:
				return 0
			}
		})

		for _, r := range all {
			if !yield(r.Start, r.Span()) {
				return
			}
		}
	}
}

func collectAll[V any](n *node[V], out *[]ivl.Range) {
	if n == nil {
		return
	}
	*out = append(*out, rangeOf(n))
	collectAll(n.Child[0], out)
	collectAll(n.Child[1], out)
}
