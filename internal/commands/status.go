package commands

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/todos"
	"github.com/arthur-debert/padz/internal/types"
)

// Complete marks the selected pads Done.
func Complete(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	return setStatus(store, scope, selectors, types.StatusDone)
}

// Reopen sets the selected pads back to Planned.
func Reopen(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	return setStatus(store, scope, selectors, types.StatusPlanned)
}

// Start marks the selected pads InProgress.
func Start(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	return setStatus(store, scope, selectors, types.StatusInProgress)
}

func statusLabel(status types.TodoStatus) string {
	switch status {
	case types.StatusDone:
		return "done"
	case types.StatusInProgress:
		return "in progress"
	default:
		return "planned"
	}
}

func setStatus(store storage.DataStore, scope types.Scope, selectors []index.Selector, newStatus types.TodoStatus) (*CmdResult, error) {
	resolved, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	var affected []uuid.UUID

	for _, r := range resolved {
		pad, err := store.GetPad(scope, types.BucketActive, r.ID)
		if err != nil {
			return nil, err
		}

		if pad.Metadata.Status == newStatus {
			result.AddMessage(Info("Pad %s is already %s", index.FormatPath(r.Path), statusLabel(newStatus)))
		} else {
			pad.Metadata.SetAttr("status", types.EnumValue(string(newStatus)))
			pad.Metadata.UpdatedAt = types.NowUTC()
			parentID := pad.Metadata.ParentID
			if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
				return nil, err
			}
			if err := todos.PropagateStatusChange(store, scope, parentID); err != nil {
				return nil, err
			}
		}
		affected = append(affected, r.ID)
	}

	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}
	for _, id := range affected {
		if dp := index.FindByID(roots, id, func(idx index.DisplayIndex) bool {
			return idx.Kind == index.Regular || idx.Kind == index.Pinned
		}); dp != nil {
			result.AffectedPads = append(result.AffectedPads, index.DisplayPad{Pad: dp.Pad, Index: dp.Index})
		}
	}

	return result, nil
}
