package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arthur-debert/padz/internal/commands"
	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/types"
)

var (
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	pinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func init() {
	// Honor NO_COLOR and dumb terminals for both renderers.
	if termenv.EnvColorProfile() == termenv.Ascii {
		color.NoColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// printResult renders a CmdResult: listed pads as an indented tree (or, when
// nothing is listed, affected pads as flat rows), then any paths, then
// messages.
func printResult(result *commands.CmdResult) {
	if jsonOutput {
		printResultJSON(result)
		return
	}

	if len(result.ListedPads) > 0 {
		printTree(result.ListedPads, 0)
	} else if len(result.AffectedPads) > 0 {
		for _, dp := range result.AffectedPads {
			fmt.Println(padLine(&dp, 0))
		}
	}

	for _, path := range result.PadPaths {
		fmt.Println(path)
	}

	for _, msg := range result.Messages {
		printMessage(msg)
	}
}

func printMessage(msg commands.CmdMessage) {
	switch msg.Level {
	case commands.LevelSuccess:
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s %s\n", green("✓"), msg.Content)
	case commands.LevelWarning:
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s %s\n", yellow("!"), msg.Content)
	case commands.LevelError:
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %s\n", red("✗"), msg.Content)
	default:
		fmt.Println(msg.Content)
	}
}

func printError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
}

func printTree(pads []index.DisplayPad, depth int) {
	for _, dp := range pads {
		fmt.Println(padLine(&dp, depth))
		printTree(dp.Children, depth+1)
	}
}

// padLine renders one listing row: index, status marker, title, tags.
func padLine(dp *index.DisplayPad, depth int) string {
	width := terminalWidth()
	indent := strings.Repeat("  ", depth)

	idx := dp.Index.String()
	switch dp.Index.Kind {
	case index.Pinned:
		idx = pinStyle.Render(idx)
	default:
		idx = indexStyle.Render(idx)
	}

	marker := ""
	switch dp.Pad.Metadata.Status {
	case types.StatusDone:
		marker = doneStyle.Render("[x] ")
	case types.StatusInProgress:
		marker = activeStyle.Render("[~] ")
	default:
		marker = faintStyle.Render("[ ] ")
	}

	title := dp.Pad.Metadata.Title
	line := fmt.Sprintf("%s%s  %s%s", indent, idx, marker, title)

	if len(dp.Pad.Metadata.Tags) > 0 && lipgloss.Width(line) < width {
		line += " " + tagStyle.Render("#"+strings.Join(dp.Pad.Metadata.Tags, " #"))
	}
	return line
}

// printContent writes full pad bodies for view-style commands.
func printContent(pads []index.DisplayPad) {
	for i, dp := range pads {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(dp.Pad.Content)
	}
}

type jsonPad struct {
	Index    string    `json:"index"`
	Pad      types.Pad `json:"pad"`
	Children []jsonPad `json:"children,omitempty"`
}

func toJSONPads(pads []index.DisplayPad) []jsonPad {
	out := make([]jsonPad, 0, len(pads))
	for _, dp := range pads {
		out = append(out, jsonPad{
			Index:    dp.Index.String(),
			Pad:      dp.Pad,
			Children: toJSONPads(dp.Children),
		})
	}
	return out
}

func printResultJSON(result *commands.CmdResult) {
	payload := map[string]any{
		"listed":   toJSONPads(result.ListedPads),
		"affected": toJSONPads(result.AffectedPads),
		"paths":    result.PadPaths,
		"messages": result.Messages,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		printError(err)
		return
	}
	fmt.Println(string(data))
}
