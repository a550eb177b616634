package main

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func insertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <start> <length> <label>",
		Short: "Insert a new range mapped to a label",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return err
			}
			length, err := strconv.ParseUint(args[1], 0, 64)
			if err != nil {
				return err
			}
			label := args[2]

			tr, err := loadTrie()
			if err != nil {
				return err
			}

			if !tr.Insert(start, length, label) {
				log.WithFields(logrus.Fields{"start": start, "length": length}).Error("insert failed: heap exhausted")
				return nil
			}

			return saveTrie(tr)
		},
	}
}
