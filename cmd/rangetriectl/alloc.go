package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bearxy123/rangetrie"
)

func allocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alloc <length>",
		Short: "Reserve a sub-range of the given length from a stored free range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return err
			}

			tr, err := loadTrie()
			if err != nil {
				return err
			}

			start := rangetrie.NewAllocator(tr).Allocate(length)
			if start == rangetrie.Invalid {
				log.WithField("length", length).Error("alloc failed: no range big enough")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "0x%x\n", start)
			return saveTrie(tr)
		},
	}
}
