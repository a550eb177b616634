package rangetrie

import "math/bits"

// bitAt returns the value (0 or 1) of key's bit at position pos.
func bitAt(key uint64, pos uint8) int {
	return int((key >> pos) & 1)
}

// msb returns the position of the highest set bit in x, and whether x
// was non-zero at all. x == 0 (equal keys) has no differing bit; the
// caller treats that case as "below" every valid pivot position.
func msb(x uint64) (pos int, ok bool) {
	if x == 0 {
		return 0, false
	}
	return bits.Len64(x) - 1, true
}
