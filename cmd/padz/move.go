package main

import (
	"github.com/spf13/cobra"
)

var moveDest string

var moveCmd = &cobra.Command{
	Use:     "move <selector>...",
	Aliases: []string{"mv"},
	Short:   "Move pads under another pad, or to the root",
	Long: `Reparent pads. With --to, pads nest under the destination; without
it they move to the top level. Moving a pad into its own subtree is
rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.MovePads(activeScope, args, moveDest)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVarP(&moveDest, "to", "t", "", "destination pad selector (omit for root)")
	rootCmd.AddCommand(moveCmd)
}
