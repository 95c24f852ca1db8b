package main

import (
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:     "done <selector>...",
	Aliases: []string{"complete"},
	Short:   "Mark pads as done",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.CompletePads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <selector>...",
	Short: "Set pads back to planned",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.ReopenPads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start <selector>...",
	Short: "Mark pads as in progress",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.StartPads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(reopenCmd)
	rootCmd.AddCommand(startCmd)
}
