package main

import (
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:     "tags",
	Aliases: []string{"tag"},
	Short:   "Manage the tag registry and pad tags",
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags in this scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.TagList(activeScope)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var tagCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.TagCreate(activeScope, args[0])
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a tag (removes it from every pad)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.TagDelete(activeScope, args[0])
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var tagRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a tag everywhere",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.TagRename(activeScope, args[0], args[1])
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <selector> <tag>...",
	Short: "Add tags to a pad",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.AddTags(activeScope, args[:1], args[1:])
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <selector> <tag>...",
	Short: "Remove tags from a pad",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.RemoveTags(activeScope, args[:1], args[1:])
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var tagClearCmd = &cobra.Command{
	Use:   "clear <selector>...",
	Short: "Remove all tags from pads",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := padz.ClearTags(activeScope, args)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagCreateCmd)
	tagCmd.AddCommand(tagDeleteCmd)
	tagCmd.AddCommand(tagRenameCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagClearCmd)
	rootCmd.AddCommand(tagCmd)
}
