package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/padz/internal/commands"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a padz store here",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.Init(activeScope)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var linkCmd = &cobra.Command{
	Use:   "link <project-path>",
	Short: "Route this project's pads through another project's store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Link files are written at the pre-resolution directory so an
		// existing link never redirects where the new one lands.
		result, err := commands.Link(scopePaths.LocalProject, args[0])
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove an existing project link",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Unlink(scopePaths.LocalProject)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
}
