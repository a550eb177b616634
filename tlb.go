package rangetrie

import "github.com/dgraph-io/ristretto"

// LookupCache wraps a Trie's point lookups in a hot-address cache,
// playing the same role for this trie that a hardware translation
// lookaside buffer plays for a page table: most lookups hit a small
// working set of recently resolved addresses.
//
// The trie gives no per-range invalidation hook, so LookupCache
// invalidates its entire cache on every mutation made through it. Any
// mutation made directly on the underlying Trie (bypassing LookupCache)
// will not be observed; callers that mix direct and cached access must
// call Invalidate themselves.
type LookupCache[V any] struct {
	t *Trie[V]
	c *ristretto.Cache
}

type cacheHit[V any] struct {
	value V
	found bool
}

// NewLookupCache wraps t in a LookupCache sized for maxEntries hot
// addresses.
func NewLookupCache[V any](t *Trie[V], maxEntries int64) (*LookupCache[V], error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &LookupCache[V]{t: t, c: c}, nil
}

// Lookup resolves point, serving from cache when possible.
func (c *LookupCache[V]) Lookup(point uint64) (value V, found bool) {
	if cached, ok := c.c.Get(point); ok {
		hit := cached.(cacheHit[V])
		return hit.value, hit.found
	}

	value, found = c.t.Lookup(point)
	c.c.Set(point, cacheHit[V]{value: value, found: found}, 1)
	return value, found
}

// Insert inserts through to the underlying trie and invalidates the
// cache.
func (c *LookupCache[V]) Insert(start, length uint64, value V) bool {
	ok := c.t.Insert(start, length, value)
	if ok {
		c.Invalidate()
	}
	return ok
}

// Remove removes through to the underlying trie and invalidates the
// cache.
func (c *LookupCache[V]) Remove(start, length uint64) error {
	err := c.t.Remove(start, length)
	c.Invalidate()
	return err
}

// Invalidate drops every cached entry. Call this after mutating the
// underlying Trie directly.
func (c *LookupCache[V]) Invalidate() {
	c.c.Clear()
}
