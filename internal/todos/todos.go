// Package todos derives a parent pad's todo status from its children and
// propagates changes bottom-up.
//
// Rules at a single parent, over its non-deleted active children:
//
//	all Done    -> Done
//	all Planned -> Planned
//	otherwise   -> InProgress
//
// A parent with no active children keeps whatever status it has. Users may
// set a parent's status by hand; the override holds until the next child
// change re-derives it. There is no downward propagation — marking a parent
// Done is a milestone check, not a batch operation on its children.
package todos

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// maxDepth bounds the upward walk so corrupt cyclic metadata cannot hang
// the process.
const maxDepth = 1000

// PropagateStatusChange re-derives statuses starting at the given parent
// and walking up until a parent's status is already correct or the root is
// reached. Call it after any write that changes a pad's status, deletion
// state, or parent, or that creates a pad under a parent.
func PropagateStatusChange(store storage.DataStore, scope types.Scope, parentID *uuid.UUID) error {
	current := parentID

	for depth := 0; current != nil && depth < maxDepth; depth++ {
		parent, err := store.GetPad(scope, types.BucketActive, *current)
		if err != nil {
			// Parent deleted or missing; nothing to derive.
			return nil
		}

		all, err := store.ListPads(scope, types.BucketActive)
		if err != nil {
			return err
		}
		var children []types.Pad
		for _, pad := range all {
			if pad.Metadata.ParentID != nil && *pad.Metadata.ParentID == *current && !pad.Metadata.IsDeleted {
				children = append(children, pad)
			}
		}
		if len(children) == 0 {
			return nil
		}

		derived := DeriveStatus(children)
		if parent.Metadata.Status == derived {
			return nil
		}

		parent.Metadata.Status = derived
		parent.Metadata.UpdatedAt = types.NowUTC()
		if err := store.SavePad(scope, types.BucketActive, parent); err != nil {
			return err
		}
		current = parent.Metadata.ParentID
	}

	return nil
}

// DeriveStatus computes a parent's status from its children.
func DeriveStatus(children []types.Pad) types.TodoStatus {
	allDone := true
	allPlanned := true
	for _, child := range children {
		if child.Metadata.Status != types.StatusDone {
			allDone = false
		}
		if child.Metadata.Status != types.StatusPlanned {
			allPlanned = false
		}
	}
	switch {
	case allDone:
		return types.StatusDone
	case allPlanned:
		return types.StatusPlanned
	default:
		return types.StatusInProgress
	}
}
