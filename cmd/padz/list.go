package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/padz/internal/commands"
	"github.com/arthur-debert/padz/internal/types"
)

var (
	listAll     bool
	listDeleted bool
	listPinned  bool
	listStatus  string
	listTags    []string
	listSearch  string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pads",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := commands.PadFilter{Status: commands.FilterActive}
		switch {
		case listAll:
			filter.Status = commands.FilterAll
		case listDeleted:
			filter.Status = commands.FilterDeleted
		case listPinned:
			filter.Status = commands.FilterPinned
		}

		if listStatus != "" {
			status, ok := types.ParseTodoStatus(listStatus)
			if !ok {
				return &commands.ValidationError{Message: "invalid status (use Planned, InProgress, or Done)"}
			}
			filter.TodoStatus = &status
		}
		filter.RequiredTags = listTags
		filter.SearchTerm = listSearch
		if len(args) > 0 {
			// Bare args are a search shortcut: padz ls groceries
			filter.SearchTerm = args[0]
		}

		result, err := padz.GetPads(activeScope, filter)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include deleted pads")
	listCmd.Flags().BoolVarP(&listDeleted, "deleted", "d", false, "only deleted pads")
	listCmd.Flags().BoolVarP(&listPinned, "pinned", "p", false, "only pinned pads")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by todo status")
	listCmd.Flags().StringSliceVarP(&listTags, "tag", "t", nil, "only pads carrying every given tag")
	listCmd.Flags().StringVar(&listSearch, "search", "", "search term over titles and content")
	rootCmd.AddCommand(listCmd)
}
