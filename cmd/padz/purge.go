package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/padz/internal/commands"
)

var (
	purgeRecursive   bool
	purgeYes         bool
	purgeIncludeDone bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge [selector]...",
	Short: "Permanently remove deleted pads",
	Long: `Purge removes pads for good. With no selectors, every deleted pad
is targeted (add --done to also purge completed pads). On a terminal
you are prompted; otherwise pass --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed := purgeYes

		result, err := padz.PurgePads(activeScope, args, purgeRecursive, confirmed, purgeIncludeDone)
		if err != nil {
			var needsConfirm *commands.RequiresConfirmationError
			if errors.As(err, &needsConfirm) && isatty.IsTerminal(os.Stdin.Fd()) {
				ok, promptErr := confirmPurge(needsConfirm.Count)
				if promptErr != nil {
					return promptErr
				}
				if !ok {
					return err
				}
				result, err = padz.PurgePads(activeScope, args, purgeRecursive, true, purgeIncludeDone)
			}
			if err != nil {
				return err
			}
		}
		printResult(result)
		return nil
	},
}

func confirmPurge(count int) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Permanently purge %d pad(s)?", count)).
			Description("This cannot be undone.").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

func init() {
	purgeCmd.Flags().BoolVarP(&purgeRecursive, "recursive", "r", false, "purge entire subtrees")
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "skip confirmation")
	purgeCmd.Flags().BoolVar(&purgeIncludeDone, "done", false, "also purge completed pads")
	rootCmd.AddCommand(purgeCmd)
}
