package commands

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/todos"
	"github.com/arthur-debert/padz/internal/types"
)

// Restore moves the selected pads back from the deleted to the active
// bucket, clearing the deletion flags. created_at is preserved, so a
// restored pad reappears at its original canonical position.
func Restore(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	resolved, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	var restoredIDs []uuid.UUID

	for _, r := range resolved {
		pad, err := store.GetPad(scope, types.BucketDeleted, r.ID)
		if err != nil {
			if storage.IsNotFound(err) {
				continue
			}
			return nil, err
		}

		pad.Metadata.SetAttr("deleted", types.BoolValue(false))
		pad.Metadata.UpdatedAt = types.NowUTC()
		parentID := pad.Metadata.ParentID

		if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
			return nil, err
		}
		if err := store.DeletePad(scope, types.BucketDeleted, r.ID); err != nil {
			return nil, err
		}

		if err := todos.PropagateStatusChange(store, scope, parentID); err != nil {
			return nil, err
		}

		result.AddMessage(Success("Pad restored (%s): %s", index.FormatPath(r.Path), pad.Metadata.Title))
		restoredIDs = append(restoredIDs, r.ID)
	}

	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}
	for _, id := range restoredIDs {
		if dp := index.FindByID(roots, id, func(idx index.DisplayIndex) bool {
			return idx.Kind == index.Regular
		}); dp != nil {
			result.AffectedPads = append(result.AffectedPads, index.DisplayPad{Pad: dp.Pad, Index: dp.Index})
		}
	}

	return result, nil
}
