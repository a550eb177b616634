package rangetrie

import (
	"github.com/bearxy123/rangetrie/internal/heap"
	"github.com/bearxy123/rangetrie/internal/ivl"
)

// node is one entry in the trie: a non-empty range, an opaque value the
// trie never inspects, the bit position that routes its two subtrees,
// and the subtrees themselves.
type node[V any] = heap.Node[V]

// Trie is a bit-pivoted binary trie mapping non-overlapping half-open
// ranges [start, end) to values of type V. The zero Trie is not usable;
// construct one with New.
//
// A Trie is not safe for concurrent use (see package doc).
type Trie[V any] struct {
	h    heap.Heap[V]
	root *node[V]
	size int
}

// New creates an empty trie backed by the given heap collaborator. h
// must not be nil.
func New[V any](h heap.Heap[V]) *Trie[V] {
	return &Trie[V]{h: h}
}

// Len returns the number of stored ranges.
func (t *Trie[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Trie[V]) newNode(r ivl.Range, value V) (*node[V], bool) {
	n, ok := t.h.Alloc()
	if !ok {
		return nil, false
	}
	n.Start, n.End, n.Value = r.Start, r.End, value
	n.Child[0], n.Child[1] = nil, nil
	return n, true
}

func rangeOf[V any](n *node[V]) ivl.Range {
	return ivl.Range{Start: n.Start, End: n.End}
}
