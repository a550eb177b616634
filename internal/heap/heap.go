// Package heap provides the node allocator collaborator the range trie
// is built against: a small Alloc/Free interface standing in for the
// kernel physical/virtual memory heap the reference implementation pulls
// its trie nodes from, plus two concrete implementations.
package heap

import (
	"sync"
	"sync/atomic"
)

// Node is the payload a Heap manages: one range-trie node's storage.
// It is generic over the opaque value type V so that Pool/Arena can be
// shared across instantiations of Trie[V] without reflection.
type Node[V any] struct {
	Start, End uint64
	Value      V
	PivotBit   uint8
	Child      [2]*Node[V]
}

// reset clears a node's fields before it is returned to its Heap, so a
// reused node never leaks a stale value or stale child pointers.
func (n *Node[V]) reset() {
	var zero Node[V]
	*n = zero
}

// Heap is the allocator collaborator contract from the spec: Alloc
// returns a fresh, zeroed node or ok=false on exhaustion; Free returns a
// node for reuse. A Heap must never be asked to free a node it didn't
// hand out.
type Heap[V any] interface {
	Alloc() (*Node[V], bool)
	Free(*Node[V])
}

// Pool is a sync.Pool-backed Heap that never fails: it grows without
// bound, same as the teacher's node pool, and tracks allocation
// statistics for debugging and tuning.
type Pool[V any] struct {
	pool sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewPool returns a ready-to-use, unbounded Heap.
func NewPool[V any]() *Pool[V] {
	p := &Pool[V]{}
	p.pool.New = func() any {
		p.totalAllocated.Add(1)
		return new(Node[V])
	}
	return p
}

// Alloc retrieves a node from the pool, or creates a new one if the pool
// is empty. Never fails.
func (p *Pool[V]) Alloc() (*Node[V], bool) {
	p.currentLive.Add(1)
	return p.pool.Get().(*Node[V]), true
}

// Free returns n to the pool after resetting its contents.
func (p *Pool[V]) Free(n *Node[V]) {
	p.currentLive.Add(-1)
	n.reset()
	p.pool.Put(n)
}

// Stats returns the number of currently live (checked-out) nodes and the
// total number of nodes ever allocated.
func (p *Pool[V]) Stats() (live, total int64) {
	return p.currentLive.Load(), p.totalAllocated.Load()
}

// Arena is a bounded Heap backed by a fixed-size slab: it hands out at
// most Capacity nodes before Alloc starts returning ok=false. It exists
// to exercise the heap-allocation-failure paths (insert silently
// no-ops, remove rolls back) that an unbounded Pool can never trigger,
// mirroring a kernel bring-up heap of fixed physical size.
type Arena[V any] struct {
	mu       sync.Mutex
	slab     []Node[V]
	free     []*Node[V]
	capacity int
}

// NewArena allocates a slab of capacity nodes up front and returns a
// Heap that can exhaust.
func NewArena[V any](capacity int) *Arena[V] {
	a := &Arena[V]{
		slab:     make([]Node[V], capacity),
		free:     make([]*Node[V], 0, capacity),
		capacity: capacity,
	}
	for i := range a.slab {
		a.free = append(a.free, &a.slab[i])
	}
	return a
}

// Alloc hands out one slab slot, or reports failure once the arena is
// exhausted.
func (a *Arena[V]) Alloc() (*Node[V], bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.free) == 0 {
		return nil, false
	}
	n := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]
	return n, true
}

// Free returns a node to the arena's free list.
func (a *Arena[V]) Free(n *Node[V]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n.reset()
	a.free = append(a.free, n)
}

// Available reports how many nodes the arena can still hand out.
func (a *Arena[V]) Available() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.free)
}
