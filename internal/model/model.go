// Package model provides a brute-force "owned address" oracle used only
// by tests: a bitset mirroring, bit for bit, which addresses a Trie
// under test currently claims, so every mutation can be cross-checked
// against ground truth independent of the trie's own logic.
package model

import "github.com/bits-and-blooms/bitset"

// Oracle tracks ownership over a bounded address window [0, size),
// small enough to bitset-test exhaustively but large enough to exercise
// multi-level pivoting.
type Oracle struct {
	owned *bitset.BitSet
	size  uint64
}

// New returns an Oracle over [0, size), initially empty.
func New(size uint64) *Oracle {
	return &Oracle{owned: bitset.New(uint(size)), size: size}
}

// Insert marks [start, start+length) as owned.
func (o *Oracle) Insert(start, length uint64) {
	for a := start; a < start+length && a < o.size; a++ {
		o.owned.Set(uint(a))
	}
}

// Remove marks [start, start+length) as unowned.
func (o *Oracle) Remove(start, length uint64) {
	for a := start; a < start+length && a < o.size; a++ {
		o.owned.Clear(uint(a))
	}
}

// Owns reports whether point is currently owned.
func (o *Oracle) Owns(point uint64) bool {
	if point >= o.size {
		return false
	}
	return o.owned.Test(uint(point))
}

// Ranges returns the maximal contiguous owned intervals, ascending by
// start, as (start, length) pairs — the ground-truth answer to what a
// correctly-coalesced-on-read RangeLookup(0, size, ...) should report as
// covered (individual stored ranges inside the trie may be more
// fragmented than this if Remove splits them up or adjacent inserts
// leave them apart, without entries merging back together, since the core never
// coalesces; this is used for coverage comparisons, not exact node
// layout).
func (o *Oracle) Ranges() (starts, lengths []uint64) {
	var inRun bool
	var runStart uint64

	for a := uint64(0); a < o.size; a++ {
		if o.owned.Test(uint(a)) {
			if !inRun {
				inRun = true
				runStart = a
			}
			continue
		}
		if inRun {
			starts = append(starts, runStart)
			lengths = append(lengths, a-runStart)
			inRun = false
		}
	}
	if inRun {
		starts = append(starts, runStart)
		lengths = append(lengths, o.size-runStart)
	}
	return starts, lengths
}

// Count returns the number of owned addresses.
func (o *Oracle) Count() uint64 {
	return uint64(o.owned.Count())
}
