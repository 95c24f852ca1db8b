package main

import (
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:     "view <selector>...",
	Aliases: []string{"show", "cat"},
	Short:   "Print pad content",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.ViewPads(activeScope, args)
		if err != nil {
			return err
		}
		if jsonOutput {
			printResult(result)
			return nil
		}
		printContent(result.ListedPads)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
