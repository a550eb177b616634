package rangetrie

import "errors"

// ErrNotInitialized is returned by operations that require a Trie
// created through New; the zero Trie has no heap collaborator attached.
var ErrNotInitialized = errors.New("rangetrie: trie not initialized")

// ErrOutOfMemory is returned when the heap collaborator can't satisfy a
// node allocation request needed to complete Remove's split step. The
// trie is left consistent: either the whole request applied, or none of
// the step that hit the failure did.
var ErrOutOfMemory = errors.New("rangetrie: heap collaborator out of memory")
