package rangetrie

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrNoRoot is returned by Fprint when asked to print an empty trie; it
// is not an error condition for any other operation.
var ErrNoRoot = errors.New("rangetrie: trie is empty")

// String returns a hierarchical diagram of the stored ranges, in the
// same left-to-right, depth-first order RangeLookup's internal
// traversal visits nodes. If Fprint fails, String panics, matching the
// convention that an in-memory Writer (strings.Builder) never errors.
func (t *Trie[V]) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	if err := t.Fprint(&b); err != nil && !errors.Is(err, ErrNoRoot) {
		panic(err)
	}
	return b.String()
}

// Fprint writes a hierarchical diagram of the stored ranges to w, one
// line per node, annotated with a humanized span size and the node's
// pivot bit. Returns ErrNoRoot for an empty trie (still writes nothing).
func (t *Trie[V]) Fprint(w io.Writer) error {
	if t == nil {
		return ErrNotInitialized
	}
	if t.root == nil {
		return ErrNoRoot
	}
	return fprintNode(w, t.root, "", true)
}

func fprintNode[V any](w io.Writer, n *node[V], prefix string, isRoot bool) error {
	branch := "├─ "
	if isRoot {
		branch = ""
	}

	span := n.End - n.Start
	if _, err := fmt.Fprintf(w, "%s%s[0x%x, 0x%x) pivot=%d span=%s\n",
		prefix, branch, n.Start, n.End, n.PivotBit, humanize.Bytes(span)); err != nil {
		return err
	}

	childPrefix := prefix
	if !isRoot {
		childPrefix += "│  "
	}
	for _, c := range n.Child {
		if c == nil {
			continue
		}
		if err := fprintNode(w, c, childPrefix, false); err != nil {
			return err
		}
	}
	return nil
}
