package rangetrie

import (
	iradix "github.com/hashicorp/go-immutable-radix"

	"github.com/bearxy123/rangetrie/internal/ivl"
)

// Catalog names address ranges for diagnostics, supplementing the range
// trie: a Trie answers "who owns this address", a Catalog answers
// "where is the region named ioapic0". The two are independent — a
// Catalog is keyed on label, not address, and doesn't enforce
// non-overlap between the ranges it names.
//
// Catalog is backed by an immutable radix tree: WalkPrefix walks the
// tree as it stood when the call began, so a Put or Delete made from
// inside visit does not disturb the walk. Catalog does no locking of
// its own.
type Catalog struct {
	tree *iradix.Tree
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{tree: iradix.New()}
}

// Put names r as label, replacing any previous range with that label.
func (c *Catalog) Put(label string, r ivl.Range) {
	c.tree, _, _ = c.tree.Insert([]byte(label), r)
}

// Get returns the range named label, if any.
func (c *Catalog) Get(label string) (ivl.Range, bool) {
	v, ok := c.tree.Get([]byte(label))
	if !ok {
		return ivl.Range{}, false
	}
	return v.(ivl.Range), true
}

// Delete removes label from the catalog.
func (c *Catalog) Delete(label string) {
	c.tree, _, _ = c.tree.Delete([]byte(label))
}

// Len returns the number of named regions.
func (c *Catalog) Len() int {
	return c.tree.Len()
}

// WalkPrefix calls visit once for every label starting with prefix, in
// lexical order, stopping early if visit returns false.
func (c *Catalog) WalkPrefix(prefix string, visit func(label string, r ivl.Range) bool) {
	c.tree.Root().WalkPrefix([]byte(prefix), func(k []byte, v interface{}) bool {
		return !visit(string(k), v.(ivl.Range))
	})
}
