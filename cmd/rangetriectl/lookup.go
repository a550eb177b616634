package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <point>",
		Short: "Find the label owning a single address, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return err
			}

			tr, err := loadTrie()
			if err != nil {
				return err
			}

			label, found := tr.Lookup(point)
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "0x%x: unowned\n", point)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "0x%x: %s\n", point, label)
			return nil
		},
	}
}
