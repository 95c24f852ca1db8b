package main

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [selector]...",
	Short: "List pads and their file paths for export tooling",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.ExportPads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <path>...",
	Short: "Create pads from text files",
	Long: `Import files (or directories of files) as pads. Directory walks
accept the extensions from import_extensions in padz.toml.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.ImportPads(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
