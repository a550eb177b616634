package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the stored snapshot for overlapping ranges and print its digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := loadTrie()
			if err != nil {
				return err
			}

			var prevEnd uint64
			first := true
			for start, length := range tr.All() {
				if !first && start < prevEnd {
					log.WithFields(map[string]any{
						"prev_end": prevEnd,
						"start":    start,
					}).Error("overlapping ranges detected")
					return fmt.Errorf("overlap at 0x%x", start)
				}
				prevEnd = start + length
				first = false
			}

			min, max := tr.Extent()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: digest=%x min=0x%x max=0x%x\n", tr.Digest(), min, max)
			return nil
		},
	}
}
