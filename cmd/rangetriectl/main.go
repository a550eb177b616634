// Command rangetriectl drives a rangetrie.Trie interactively from the
// shell, for manual testing and demos: each invocation loads a JSON
// snapshot, applies one operation, and (for mutating operations) writes
// the snapshot back out.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bearxy123/rangetrie"
	"github.com/bearxy123/rangetrie/internal/heap"
)

var (
	statePath string
	log       = logrus.StandardLogger()
)

func main() {
	root := &cobra.Command{
		Use:   "rangetriectl",
		Short: "Inspect and drive a range trie from the shell",
	}
	root.PersistentFlags().StringVar(&statePath, "state", "rangetrie.json", "path to the JSON snapshot file")

	root.AddCommand(
		insertCmd(),
		removeCmd(),
		lookupCmd(),
		extentCmd(),
		allocCmd(),
		dumpCmd(),
		verifyCmd(),
	)

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func loadTrie() (*rangetrie.Trie[string], error) {
	tr := rangetrie.New[string](heap.NewPool[string]())

	data, err := os.ReadFile(statePath)
	if os.IsNotExist(err) {
		return tr, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	if err := tr.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return tr, nil
}

func saveTrie(tr *rangetrie.Trie[string]) error {
	data, err := tr.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(statePath, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
