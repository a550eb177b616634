package rangetrie

import "encoding/json"

// entry is the wire format for one stored range.
type entry[V any] struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
	Value V      `json:"value"`
}

// MarshalJSON encodes the trie as a JSON array of {start, end, value}
// entries in ascending End order. V must be JSON-representable (a
// JSON-native type, or one implementing json.Marshaler); opaque types
// such as unsafe.Pointer will fail to marshal, which is inherent to the
// trie treating values as opaque (§3 invariant 4) rather than a defect
// in this encoding.
func (t *Trie[V]) MarshalJSON() ([]byte, error) {
	if t == nil {
		return nil, ErrNotInitialized
	}

	entries := make([]entry[V], 0, t.size)
	for start, length := range t.All() {
		val, _ := t.Lookup(start)
		entries = append(entries, entry[V]{Start: start, End: start + length, Value: val})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON replaces the trie's contents with the entries encoded in
// data, inserting each via Insert against the trie's existing heap
// collaborator. The trie must already be constructed via New.
func (t *Trie[V]) UnmarshalJSON(data []byte) error {
	if t == nil {
		return ErrNotInitialized
	}

	var entries []entry[V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	t.root = nil
	t.size = 0
	for _, e := range entries {
		t.Insert(e.Start, e.End-e.Start, e.Value)
	}
	return nil
}
