package rangetrie

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a content hash of the trie's current canonical form:
// the ascending-End stream of (start, length) pairs. Two tries with the
// same stored ranges in the same state hash identically regardless of
// insertion order or internal shape; a changed Digest means the trie's
// observable contents changed (an allocation, insert, or remove since
// the last Digest call), which is cheaper for a caller to check than
// diffing the whole range list.
//
// Digest does not hash values: V is opaque to the trie (§3 invariant 4)
// and may not be hashable at all.
func (t *Trie[V]) Digest() uint64 {
	if t == nil {
		return 0
	}

	h := xxhash.New()
	var buf [16]byte
	for start, length := range t.All() {
		binary.LittleEndian.PutUint64(buf[0:8], start)
		binary.LittleEndian.PutUint64(buf[8:16], length)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
