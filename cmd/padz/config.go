package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/padz/internal/commands"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Show or set configuration",
	Long: `Without arguments, prints the resolved configuration. With a key
and value, writes the scope's padz.toml. Recognized keys: file_ext,
import_extensions (comma separated).`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		action := commands.ConfigAction{Kind: commands.ConfigShow}
		if len(args) == 2 {
			action = commands.ConfigAction{Kind: commands.ConfigSet, Key: args[0], Value: args[1]}
		} else if len(args) == 1 {
			return &commands.ValidationError{Message: "config set needs both a key and a value"}
		}

		result, err := padz.Configure(activeScope, action)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
