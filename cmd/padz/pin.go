package main

import (
	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <selector>...",
	Short: "Pin pads (pinned pads are delete-protected)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.PinPads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var unpinCmd = &cobra.Command{
	Use:   "unpin <selector>...",
	Short: "Unpin pads",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.UnpinPads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
}
