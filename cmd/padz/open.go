package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/padz/internal/commands"
)

var openCmd = &cobra.Command{
	Use:   "open <selector>...",
	Short: "Replace pad content from piped stdin",
	Long: `Replace the selected pads' content with piped input, e.g.:

  cat notes.md | padz open 1

The first line of the input becomes the title.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return &commands.ValidationError{Message: "open requires piped input; set $EDITOR workflows up separately"}
		}
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		result, err := padz.UpdateFromContent(activeScope, args, string(raw))
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
