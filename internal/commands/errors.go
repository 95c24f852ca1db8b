package commands

import (
	"fmt"

	"github.com/google/uuid"
)

// SelectorNotFoundError reports a path selector that matched nothing in the
// canonical tree.
type SelectorNotFoundError struct {
	Path string
}

func (e *SelectorNotFoundError) Error() string {
	return fmt.Sprintf("Index %s not found in current scope", e.Path)
}

// SelectorAmbiguousError reports a title query that matched more than one
// pad.
type SelectorAmbiguousError struct {
	Term  string
	Count int
}

func (e *SelectorAmbiguousError) Error() string {
	return fmt.Sprintf("Term %q matches multiple pads (matched %d). Please be more specific.", e.Term, e.Count)
}

// NoMatchError reports a title query that matched nothing.
type NoMatchError struct {
	Term string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("No pad found matching %q", e.Term)
}

// InvalidRangeError reports range endpoints given in reversed order (a
// missing endpoint is a SelectorNotFoundError).
type InvalidRangeError struct {
	Message string
}

func (e *InvalidRangeError) Error() string {
	return "Invalid range: " + e.Message
}

// DeleteProtectedError reports a delete-like selector that resolved to a
// protected pad.
type DeleteProtectedError struct{}

func (e *DeleteProtectedError) Error() string {
	return "Pinned pads are delete protected, unpin then delete it"
}

// CycleError reports a move that would make a pad its own ancestor.
type CycleError struct {
	Path string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("Cannot move pad '%s' into itself or its own descendant", e.Path)
}

// ValidationError reports rejected input: a bad tag name, an empty title,
// an unknown config key.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a name collision in the tag registry.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// RequiresConfirmationError aborts a purge that was not confirmed. Count is
// how many pads would be removed.
type RequiresConfirmationError struct {
	Count int
}

func (e *RequiresConfirmationError) Error() string {
	return fmt.Sprintf("Purging %d pad(s). Aborted, confirm with --yes or -y for hard deletion.", e.Count)
}

// RequiresRecursiveError aborts a purge of a subtree requested without the
// recursive flag. Count is how many targets have children.
type RequiresRecursiveError struct {
	Count int
}

func (e *RequiresRecursiveError) Error() string {
	return fmt.Sprintf("Cannot purge: %d pad(s) have children. Use --recursive (-r) to purge entire subtrees.", e.Count)
}

// NotFoundError reports a pad id absent from the store.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pad %s not found", e.ID)
}
