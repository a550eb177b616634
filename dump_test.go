package rangetrie

import (
	"strings"
	"testing"

	"github.com/bearxy123/rangetrie/internal/heap"
)

func TestStringContainsStoredRanges(t *testing.T) {
	tr := New[string](heap.NewPool[string]())
	tr.Insert(0x1000, 0x100, "x")

	s := tr.String()
	if !strings.Contains(s, "0x1000") {
		t.Errorf("String() = %q, want it to mention 0x1000", s)
	}
}

func TestFprintEmptyTrie(t *testing.T) {
	tr := New[string](heap.NewPool[string]())
	var b strings.Builder
	if err := tr.Fprint(&b); err != ErrNoRoot {
		t.Errorf("Fprint on empty trie = %v, want ErrNoRoot", err)
	}
}

func TestFprintUninitialized(t *testing.T) {
	var tr *Trie[string]
	var b strings.Builder
	if err := tr.Fprint(&b); err != ErrNotInitialized {
		t.Errorf("Fprint on nil trie = %v, want ErrNotInitialized", err)
	}
}
