package rangetrie

import (
	"testing"

	"github.com/bearxy123/rangetrie/internal/heap"
)

func newTestTrie[V any]() *Trie[V] {
	return New[V](heap.NewPool[V]())
}

// S1: insert + lookup.
func TestInsertLookup(t *testing.T) {
	tr := newTestTrie[string]()
	tr.Insert(0x1000, 0x1000, "A")
	tr.Insert(0x3000, 0x100, "B")

	tests := []struct {
		point     uint64
		wantValue string
		wantFound bool
	}{
		{0x1000, "A", true},
		{0x1FFF, "A", true},
		{0x2000, "", false},
		{0x30FF, "B", true},
		{0x3100, "", false},
	}
	for _, tt := range tests {
		got, found := tr.Lookup(tt.point)
		if found != tt.wantFound || got != tt.wantValue {
			t.Errorf("Lookup(0x%x) = (%q, %v), want (%q, %v)", tt.point, got, found, tt.wantValue, tt.wantFound)
		}
	}
}

// S2: interior remove splits the stored range.
func TestRemoveInteriorSplit(t *testing.T) {
	tr := newTestTrie[string]()
	tr.Insert(0, 0x1000, "V")
	if err := tr.Remove(0x400, 0x200); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	tests := []struct {
		point     uint64
		wantValue string
		wantFound bool
	}{
		{0x3FF, "V", true},
		{0x400, "", false},
		{0x5FF, "", false},
		{0x600, "V", true},
		{0xFFF, "V", true},
	}
	for _, tt := range tests {
		got, found := tr.Lookup(tt.point)
		if found != tt.wantFound || got != tt.wantValue {
			t.Errorf("Lookup(0x%x) = (%q, %v), want (%q, %v)", tt.point, got, found, tt.wantValue, tt.wantFound)
		}
	}

	min, max := tr.Extent()
	if min != 0 || max != 0x1000 {
		t.Errorf("Extent() = (0x%x, 0x%x), want (0x0, 0x1000)", min, max)
	}
}

// S3: boundary remove trims from the low end, no split needed.
func TestRemoveBoundary(t *testing.T) {
	tr := newTestTrie[string]()
	tr.Insert(0, 0x1000, "V")
	if err := tr.Remove(0, 0x400); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	min, max := tr.Extent()
	if min != 0x400 || max != 0x1000 {
		t.Errorf("Extent() = (0x%x, 0x%x), want (0x400, 0x1000)", min, max)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

// S4: range_lookup visits in ascending End order.
func TestRangeLookupOrder(t *testing.T) {
	tr := newTestTrie[int]()
	tr.Insert(100, 100, 1) // [100,200)
	tr.Insert(300, 100, 2) // [300,400)
	tr.Insert(0, 50, 3)    // [0,50)

	var gotStarts []uint64
	tr.RangeLookup(0, 500, func(start, length uint64) {
		gotStarts = append(gotStarts, start)
	})

	want := []uint64{0, 100, 300}
	if len(gotStarts) != len(want) {
		t.Fatalf("visited %d ranges, want %d", len(gotStarts), len(want))
	}
	for i, w := range want {
		if gotStarts[i] != w {
			t.Errorf("visit #%d start = 0x%x, want 0x%x", i, gotStarts[i], w)
		}
	}
}

// S5: allocator first-fit, trimming from the low end.
func TestAllocatorFirstFit(t *testing.T) {
	tr := newTestTrie[string]()
	tr.Insert(0x1000, 0x1000, "F")
	alloc := NewAllocator(tr)

	got := alloc.Allocate(0x100)
	if got != 0x1000 {
		t.Fatalf("Allocate() = 0x%x, want 0x1000", got)
	}
	got = alloc.Allocate(0x100)
	if got != 0x1100 {
		t.Fatalf("Allocate() = 0x%x, want 0x1100", got)
	}

	// Two 0x100 allocations have already consumed 0x200 of a 0x1000
	// span; 13 more succeed (15 total, starts 0x1000..0x1E00), leaving a
	// final 0x100 remainder whose span is no longer *strictly greater*
	// than the request, so the 16th call reports Invalid.
	for i := 0; i < 13; i++ {
		if r := alloc.Allocate(0x100); r == Invalid {
			t.Fatalf("Allocate() #%d returned Invalid, want a valid address", i+3)
		}
	}
	if got := alloc.Allocate(0x100); got != Invalid {
		t.Errorf("16th Allocate() = 0x%x, want Invalid", got)
	}
}

// S6: extent/lookup/allocate on an empty trie.
func TestEmptyTrie(t *testing.T) {
	tr := newTestTrie[string]()

	min, max := tr.Extent()
	if min != 0 || max != 0 {
		t.Errorf("Extent() = (0x%x, 0x%x), want (0, 0)", min, max)
	}
	if _, found := tr.Lookup(123); found {
		t.Error("Lookup on empty trie found a value")
	}
	if got := NewAllocator(tr).Allocate(1); got != Invalid {
		t.Errorf("Allocate() on empty trie = 0x%x, want Invalid", got)
	}
}

func TestRemoveNonOverlappingIsNoop(t *testing.T) {
	tr := newTestTrie[string]()
	tr.Insert(0x1000, 0x100, "A")
	if err := tr.Remove(0x2000, 0x100); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if v, found := tr.Lookup(0x1050); !found || v != "A" {
		t.Errorf("Lookup(0x1050) = (%q, %v), want (A, true)", v, found)
	}
}

func TestRemoveWholeRangeDeletesNode(t *testing.T) {
	tr := newTestTrie[string]()
	tr.Insert(0x1000, 0x100, "A")
	tr.Insert(0x2000, 0x100, "B")

	if err := tr.Remove(0x1000, 0x100); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
	if _, found := tr.Lookup(0x1050); found {
		t.Error("range [0x1000,0x1100) should be gone")
	}
	if v, found := tr.Lookup(0x2050); !found || v != "B" {
		t.Errorf("Lookup(0x2050) = (%q, %v), want (B, true)", v, found)
	}
}

func TestInsertManyThenLookupAll(t *testing.T) {
	tr := newTestTrie[int]()
	const n = 500
	for i := 0; i < n; i++ {
		start := uint64(i) * 0x100
		tr.Insert(start, 0x80, i)
	}
	for i := 0; i < n; i++ {
		start := uint64(i) * 0x100
		if v, found := tr.Lookup(start + 0x10); !found || v != i {
			t.Fatalf("Lookup(0x%x) = (%d, %v), want (%d, true)", start+0x10, v, found, i)
		}
		if _, found := tr.Lookup(start + 0x90); found {
			t.Fatalf("Lookup(0x%x) in the gap found a value", start+0x90)
		}
	}
	if tr.Len() != n {
		t.Errorf("Len() = %d, want %d", tr.Len(), n)
	}
}
