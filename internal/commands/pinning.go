package commands

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// Pin pins the selected pads. Pinning couples delete protection on.
func Pin(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	return setPinned(store, scope, selectors, true)
}

// Unpin unpins the selected pads and drops their delete protection.
func Unpin(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	return setPinned(store, scope, selectors, false)
}

func setPinned(store storage.DataStore, scope types.Scope, selectors []index.Selector, pinned bool) (*CmdResult, error) {
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

		if pad.Metadata.IsPinned == pinned {
			state := "pinned"
			if !pinned {
				state = "unpinned"
			}
			result.AddMessage(Info("Pad %s is already %s", index.FormatPath(r.Path), state))
			continue
		}

		pad.Metadata.SetAttr("pinned", types.BoolValue(pinned))
		pad.Metadata.UpdatedAt = types.NowUTC()
		if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
			return nil, err
		}
		affected = append(affected, r.ID)
	}

	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}
	wantKind := index.Regular
	if pinned {
		wantKind = index.Pinned
	}
	for _, id := range affected {
		if dp := index.FindByID(roots, id, func(idx index.DisplayIndex) bool {
			return idx.Kind == wantKind
		}); dp != nil {
			result.AffectedPads = append(result.AffectedPads, index.DisplayPad{Pad: dp.Pad, Index: dp.Index})
		}
	}

	return result, nil
}
