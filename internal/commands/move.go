package commands

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/todos"
	"github.com/arthur-debert/padz/internal/types"
)

// maxAncestorDepth bounds the ancestor walk during cycle detection.
const maxAncestorDepth = 1000

// Move reparents the selected pads under the destination, or to the root
// when dest is nil. Moving a pad into itself or one of its descendants is
// rejected.
func Move(store storage.DataStore, scope types.Scope, selectors []index.Selector, dest *index.Selector) (*CmdResult, error) {
	resolvedSources, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}
	if len(resolvedSources) == 0 {
		return &CmdResult{}, nil
	}

	var destID *uuid.UUID
	if dest != nil {
		resolvedDest, err := ResolveSelectors(store, scope, []index.Selector{*dest}, false)
		if err != nil {
			return nil, err
		}
		if len(resolvedDest) != 1 {
			return nil, &ValidationError{Message: "destination selector must resolve to a single pad"}
		}
		id := resolvedDest[0].ID
		destID = &id
	}

	result := &CmdResult{}
	processed := map[uuid.UUID]bool{}

	for _, r := range resolvedSources {
		if processed[r.ID] {
			continue
		}
		processed[r.ID] = true

		if destID != nil && *destID == r.ID {
			return nil, &CycleError{Path: index.FormatPath(r.Path)}
		}
		if destID != nil {
			descends, err := isDescendantOf(store, scope, *destID, r.ID)
			if err != nil {
				return nil, err
			}
			if descends {
				return nil, &CycleError{Path: index.FormatPath(r.Path)}
			}
		}

		pad, err := store.GetPad(scope, types.BucketActive, r.ID)
		if err != nil {
			return nil, err
		}

		oldParent := pad.Metadata.ParentID
		if sameParent(oldParent, destID) {
			result.AddMessage(Info("Pad '%s' is already at destination", index.FormatPath(r.Path)))
			continue
		}

		pad.Metadata.SetAttr("parent", types.RefValue(destID))
		pad.Metadata.UpdatedAt = types.NowUTC()
		if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
			return nil, err
		}

		// Both sides of the move re-derive: the old parent lost a child,
		// the new one gained it.
		if err := todos.PropagateStatusChange(store, scope, oldParent); err != nil {
			return nil, err
		}
		if err := todos.PropagateStatusChange(store, scope, destID); err != nil {
			return nil, err
		}

		result.AffectedPads = append(result.AffectedPads, index.DisplayPad{
			Pad:   *pad,
			Index: r.Path[len(r.Path)-1],
		})
	}

	return result, nil
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// isDescendantOf walks up from child looking for ancestor, bounded so
// corrupt cyclic metadata cannot spin forever.
func isDescendantOf(store storage.DataStore, scope types.Scope, child, ancestor uuid.UUID) (bool, error) {
	current := child
	for depth := 0; depth < maxAncestorDepth; depth++ {
		pad, err := store.GetPad(scope, types.BucketActive, current)
		if err != nil {
			if storage.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		if pad.Metadata.ParentID == nil {
			return false, nil
		}
		if *pad.Metadata.ParentID == ancestor {
			return true, nil
		}
		current = *pad.Metadata.ParentID
	}
	return false, nil
}
