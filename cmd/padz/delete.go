package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <selector>...",
	Aliases: []string{"rm", "del"},
	Short:   "Soft-delete pads (recoverable with restore)",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.DeletePads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <selector>...",
	Short: "Restore deleted pads",
	Long: `Restore pads from the deleted listing. Bare numbers address that
listing: 'padz restore 2' restores d2.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.RestorePads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(restoreCmd)
}
