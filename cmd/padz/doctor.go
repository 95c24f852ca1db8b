package main

import (
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"sync"},
	Short:   "Repair the store (recover orphans, drop dangling entries)",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.Doctor(activeScope)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
