package commands

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/todos"
	"github.com/arthur-debert/padz/internal/types"
)

// Delete soft-deletes the selected pads: flags them deleted and moves them
// from the active to the deleted bucket. Protected pads fail the batch.
func Delete(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	resolved, err := ResolveSelectors(store, scope, selectors, true)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	var deletedIDs []uuid.UUID

	for _, r := range resolved {
		pad, err := store.GetPad(scope, types.BucketActive, r.ID)
		if err != nil {
			if storage.IsNotFound(err) {
				// Already outside the active bucket (overlapping range).
				continue
			}
			return nil, err
		}

		pad.Metadata.SetAttr("deleted", types.BoolValue(true))
		pad.Metadata.UpdatedAt = types.NowUTC()
		parentID := pad.Metadata.ParentID

		if err := store.SavePad(scope, types.BucketDeleted, pad); err != nil {
			return nil, err
		}
		if err := store.DeletePad(scope, types.BucketActive, r.ID); err != nil {
			return nil, err
		}

		if err := todos.PropagateStatusChange(store, scope, parentID); err != nil {
			return nil, err
		}

		result.AddMessage(Success("Pad deleted (%s): %s", index.FormatPath(r.Path), pad.Metadata.Title))
		deletedIDs = append(deletedIDs, r.ID)
	}

	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}
	for _, id := range deletedIDs {
		if dp := index.FindByID(roots, id, func(idx index.DisplayIndex) bool {
			return idx.Kind == index.Deleted
		}); dp != nil {
			result.AffectedPads = append(result.AffectedPads, index.DisplayPad{Pad: dp.Pad, Index: dp.Index})
		}
	}

	return result, nil
}
