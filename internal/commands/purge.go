package commands

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// Purge permanently removes pads and their descendants from storage.
//
// With no selectors it targets every deleted pad, plus Done pads when
// includeDone is set. Purging any target that has children requires the
// recursive flag; nothing is deleted otherwise. The confirmed flag must be
// set or the call aborts with a count-bearing error, so the UI can prompt.
func Purge(store storage.DataStore, scope types.Scope, selectors []index.Selector, recursive, confirmed, includeDone bool) (*CmdResult, error) {
	var targets []index.DisplayPad
	if len(selectors) == 0 {
		roots, err := IndexedPads(store, scope)
		if err != nil {
			return nil, err
		}
		for _, entry := range index.Linearize(roots) {
			dp := entry.Pad
			if dp.Index.Kind == index.Deleted ||
				(includeDone && dp.Pad.Metadata.Status == types.StatusDone && dp.Index.Kind == index.Regular) {
				targets = append(targets, index.DisplayPad{Pad: dp.Pad, Index: dp.Index})
			}
		}
	} else {
		var err error
		targets, err = PadsBySelectors(store, scope, selectors, true)
		if err != nil {
			return nil, err
		}
	}

	if len(targets) == 0 {
		result := &CmdResult{}
		result.AddMessage(Info("No pads to purge."))
		return result, nil
	}

	targetIDs := make([]uuid.UUID, 0, len(targets))
	seen := map[uuid.UUID]bool{}
	for _, dp := range targets {
		if !seen[dp.Pad.Metadata.ID] {
			seen[dp.Pad.Metadata.ID] = true
			targetIDs = append(targetIDs, dp.Pad.Metadata.ID)
		}
	}

	descendants, err := DescendantIDs(store, scope, targetIDs)
	if err != nil {
		return nil, err
	}
	descendantSet := map[uuid.UUID]bool{}
	for _, id := range descendants {
		if !seen[id] {
			descendantSet[id] = true
		}
	}

	if len(descendants) > 0 && !recursive {
		withChildren := 0
		for _, id := range targetIDs {
			kids, err := DescendantIDs(store, scope, []uuid.UUID{id})
			if err != nil {
				return nil, err
			}
			if len(kids) > 0 {
				withChildren++
			}
		}
		return nil, &RequiresRecursiveError{Count: withChildren}
	}

	total := len(targetIDs) + len(descendantSet)
	if !confirmed {
		return nil, &RequiresConfirmationError{Count: total}
	}

	allIDs := append([]uuid.UUID(nil), targetIDs...)
	for id := range descendantSet {
		allIDs = append(allIDs, id)
	}

	result := &CmdResult{}
	result.AddMessage(Info("Purging %d pad(s)...", total))

	for _, id := range allIDs {
		if _, err := GetPadAnyBucket(store, scope, id); err != nil {
			if storage.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if err := DeletePadAnyBucket(store, scope, id); err != nil {
			return nil, err
		}
	}

	for _, dp := range targets {
		result.AddMessage(Success("Purged: %s %s", dp.Index, dp.Pad.Metadata.Title))
	}
	if len(descendantSet) > 0 {
		result.AddMessage(Success("And purged %d descendant(s)", len(descendantSet)))
	}

	return result, nil
}
