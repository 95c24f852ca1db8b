package commands

import (
	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/todos"
	"github.com/arthur-debert/padz/internal/types"
)

// PadUpdate is one update to apply: the pad addressed by Path gets the new
// title and body (re-normalized), and optionally a new status.
type PadUpdate struct {
	Path    []index.DisplayIndex
	Title   string
	Content string
	Status  *types.TodoStatus
}

// Update applies a batch of updates. Editors hand back title and body
// separately; the pair is re-normalized into canonical content before the
// write.
func Update(store storage.DataStore, scope types.Scope, updates []PadUpdate) (*CmdResult, error) {
	if len(updates) == 0 {
		return &CmdResult{}, nil
	}

	selectors := make([]index.Selector, len(updates))
	for i, u := range updates {
		selectors[i] = index.PathSelector(u.Path...)
	}
	resolved, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	for i, r := range resolved {
		update := updates[i]
		pad, err := GetPadAnyBucket(store, scope, r.ID)
		if err != nil {
			return nil, err
		}

		displayTitle, content := types.NormalizePadContent(update.Title, update.Content)
		if displayTitle == "" {
			return nil, &ValidationError{Message: "pad title cannot be empty"}
		}

		if update.Status != nil {
			pad.Metadata.Status = *update.Status
		}
		pad.Metadata.Title = displayTitle
		pad.Metadata.UpdatedAt = types.NowUTC()
		pad.Content = content

		parentID := pad.Metadata.ParentID
		bucket := types.BucketActive
		if pad.Metadata.IsDeleted {
			bucket = types.BucketDeleted
		}
		if err := store.SavePad(scope, bucket, pad); err != nil {
			return nil, err
		}
		if err := todos.PropagateStatusChange(store, scope, parentID); err != nil {
			return nil, err
		}

		result.AddMessage(Success("Pad updated (%s): %s", index.FormatPath(r.Path), pad.Metadata.Title))
		result.AffectedPads = append(result.AffectedPads, index.DisplayPad{
			Pad:   *pad,
			Index: r.Path[len(r.Path)-1],
		})
	}

	return result, nil
}

// UpdateFromContent parses raw text once (title from the first line, body
// from the rest) and applies it to every selected pad. This backs pipe
// workflows like `cat notes.md | padz open 1`.
func UpdateFromContent(store storage.DataStore, scope types.Scope, selectors []index.Selector, raw string) (*CmdResult, error) {
	title, content, ok := types.ParsePadContent(raw)
	if !ok {
		return nil, &ValidationError{Message: "piped content is empty or invalid"}
	}

	resolved, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	for _, r := range resolved {
		pad, err := GetPadAnyBucket(store, scope, r.ID)
		if err != nil {
			return nil, err
		}

		pad.Metadata.Title = title
		pad.Metadata.UpdatedAt = types.NowUTC()
		pad.Content = content

		parentID := pad.Metadata.ParentID
		bucket := types.BucketActive
		if pad.Metadata.IsDeleted {
			bucket = types.BucketDeleted
		}
		if err := store.SavePad(scope, bucket, pad); err != nil {
			return nil, err
		}
		if err := todos.PropagateStatusChange(store, scope, parentID); err != nil {
			return nil, err
		}

		result.AddMessage(Success("Updated (%s): %s", index.FormatPath(r.Path), pad.Metadata.Title))
		result.AffectedPads = append(result.AffectedPads, index.DisplayPad{
			Pad:   *pad,
			Index: r.Path[len(r.Path)-1],
		})
	}

	return result, nil
}
