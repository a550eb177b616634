package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func extentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extent",
		Short: "Print the lowest and highest owned addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := loadTrie()
			if err != nil {
				return err
			}

			min, max := tr.Extent()
			fmt.Fprintf(cmd.OutOrStdout(), "min=0x%x max=0x%x\n", min, max)
			return nil
		},
	}
}
