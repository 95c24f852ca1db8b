// Package commands implements the core business logic behind every padz
// operation. Each command is a pure function over the store and domain
// types; commands never print, prompt, or exit. They return a CmdResult
// that any UI can render.
package commands

import (
	"fmt"

	"github.com/arthur-debert/padz/internal/index"
)

// MessageLevel classifies a structured message.
type MessageLevel string

const (
	LevelInfo    MessageLevel = "info"
	LevelSuccess MessageLevel = "success"
	LevelWarning MessageLevel = "warning"
	LevelError   MessageLevel = "error"
)

// CmdMessage is one user-visible message with a severity level.
type CmdMessage struct {
	Level   MessageLevel `json:"level"`
	Content string       `json:"content"`
}

// Info builds an info-level message.
func Info(format string, args ...any) CmdMessage {
	return CmdMessage{Level: LevelInfo, Content: fmt.Sprintf(format, args...)}
}

// Success builds a success-level message.
func Success(format string, args ...any) CmdMessage {
	return CmdMessage{Level: LevelSuccess, Content: fmt.Sprintf(format, args...)}
}

// Warning builds a warning-level message.
func Warning(format string, args ...any) CmdMessage {
	return CmdMessage{Level: LevelWarning, Content: fmt.Sprintf(format, args...)}
}

// ErrorMessage builds an error-level message.
func ErrorMessage(format string, args ...any) CmdMessage {
	return CmdMessage{Level: LevelError, Content: fmt.Sprintf(format, args...)}
}

// CmdResult is the structured return of every command: the pads an
// operation modified (with their post-operation canonical index), the pads
// a read operation lists, any filesystem paths, and messages.
type CmdResult struct {
	AffectedPads []index.DisplayPad
	ListedPads   []index.DisplayPad
	PadPaths     []string
	Messages     []CmdMessage
}

// AddMessage appends a message.
func (r *CmdResult) AddMessage(msg CmdMessage) {
	r.Messages = append(r.Messages, msg)
}
