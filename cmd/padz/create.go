package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	createParent string
	createTags   []string
)

var createCmd = &cobra.Command{
	Use:     "create [title] [content...]",
	Aliases: []string{"new", "add"},
	Short:   "Create a new pad",
	Long: `Create a new pad. The first argument is the title; remaining
arguments join into the body. Piped stdin becomes the whole pad
(title from the first line).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title := ""
		content := ""

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			raw, err := io.ReadAll(os.Stdin)
			if err == nil && strings.TrimSpace(string(raw)) != "" {
				lines := strings.SplitN(strings.TrimSpace(string(raw)), "\n", 2)
				title = lines[0]
				if len(lines) > 1 {
					content = lines[1]
				}
			}
		}

		if len(args) > 0 {
			title = args[0]
			content = strings.Join(args[1:], " ")
		}

		result, err := padz.CreatePad(activeScope, title, content, createParent, createTags)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createParent, "in", "i", "", "parent pad selector to nest under")
	createCmd.Flags().StringSliceVarP(&createTags, "tag", "t", nil, "tags to apply (must exist in the registry)")
	rootCmd.AddCommand(createCmd)
}
