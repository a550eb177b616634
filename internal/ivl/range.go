// Package ivl implements the pure interval algebra the range trie is
// built on: half-open ranges over the 64-bit address space, and the
// emptiness/intersection/cut operations used to splice them apart.
package ivl

// Range is a half-open interval [Start, End) over 64-bit addresses.
// The zero Range is the canonical empty range [0, 0).
type Range struct {
	Start uint64
	End   uint64
}

// Span returns End-Start. A Range is only ever constructed with
// Start <= End; callers that violate this get an implementation-defined
// wraparound span, not a panic (see spec's "precondition violations:
// undefined").
func (r Range) Span() uint64 {
	return r.End - r.Start
}

// Empty reports whether r has zero span.
func (r Range) Empty() bool {
	return r.Span() == 0
}

// Equal reports whether a and b denote the same interval.
func Equal(a, b Range) bool {
	return a.Start == b.Start && a.End == b.End
}

// Contains reports whether point lies in [r.Start, r.End).
func (r Range) Contains(point uint64) bool {
	return point >= r.Start && point < r.End
}

// Intersect returns the overlap of a and b, or the canonical empty
// range [0,0) if they don't overlap.
func Intersect(a, b Range) Range {
	r := Range{Start: max(a.Start, b.Start), End: min(a.End, b.End)}
	if r.End <= r.Start {
		return Range{}
	}
	return r
}

// Cut splits from into the one or two disjoint pieces that lie outside
// snip, i.e. it computes from \ snip.
//
//   - If from and snip don't overlap, d1 = from and d2 is empty.
//   - If snip covers the low end of from but not the high end,
//     d1 = [i.End, from.End) and d2 is empty.
//   - If snip covers the high end of from but not the low end,
//     d1 = [from.Start, i.Start) and d2 is empty.
//   - If snip is strictly interior to from, d1 = [from.Start, i.Start)
//     and d2 = [i.End, from.End): from splits into a low and a high
//     remainder.
//
// Either or both outputs may be empty; both are empty iff snip covers
// from entirely.
func Cut(from, snip Range) (d1, d2 Range) {
	i := Intersect(from, snip)
	if i.Empty() {
		return from, Range{}
	}

	coversLow := i.Start == from.Start
	coversHigh := i.End == from.End

	switch {
	case coversLow && coversHigh:
		return Range{}, Range{}
	case coversLow:
		return Range{Start: i.End, End: from.End}, Range{}
	case coversHigh:
		return Range{Start: from.Start, End: i.Start}, Range{}
	default:
		return Range{Start: from.Start, End: i.Start}, Range{Start: i.End, End: from.End}
	}
}
