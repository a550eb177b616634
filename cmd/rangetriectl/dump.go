package main

import (
	"github.com/spf13/cobra"
)

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the trie's internal node structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := loadTrie()
			if err != nil {
				return err
			}

			return tr.Fprint(cmd.OutOrStdout())
		},
	}
}
