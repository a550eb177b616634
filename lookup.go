package rangetrie

// Lookup returns the value of the unique stored range containing point,
// or the zero value and false if no stored range contains it.
func (t *Trie[V]) Lookup(point uint64) (value V, found bool) {
	if t == nil {
		var zero V
		return zero, false
	}

	// A range is placed by the bits of its End, and a point inside it
	// need not share those bits, so every node is checked.
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if point >= n.Start && point < n.End {
			return n.Value, true
		}
		stack = append(stack, n.Child[0], n.Child[1])
	}

	var zero V
	return zero, false
}
