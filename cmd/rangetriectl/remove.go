package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <start> <length>",
		Short: "Remove a range, splitting any owner that straddles it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return err
			}
			length, err := strconv.ParseUint(args[1], 0, 64)
			if err != nil {
				return err
			}

			tr, err := loadTrie()
			if err != nil {
				return err
			}

			if err := tr.Remove(start, length); err != nil {
				log.WithError(err).Error("remove failed")
				return err
			}

			return saveTrie(tr)
		},
	}
}
