package main

import (
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <selector>...",
	Short: "Print content file paths (for editors and scripts)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.PadPaths(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
