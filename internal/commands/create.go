package commands

import (
	"strings"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/todos"
	"github.com/arthur-debert/padz/internal/types"
)

// Create makes a new pad in the active bucket. The optional parent selector
// nests it; tagNames must already exist in the scope's registry. The title
// must be nonempty after trimming.
func Create(store storage.DataStore, scope types.Scope, title, content string, parent *index.Selector, tagNames []string) (*CmdResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Message: "pad title cannot be empty"}
	}

	pad := types.NewPad(title, content)

	if parent != nil {
		resolved, err := ResolveSelectors(store, scope, []index.Selector{*parent}, false)
		if err != nil {
			return nil, err
		}
		if len(resolved) != 1 {
			return nil, &ValidationError{Message: "parent selector must resolve to a single pad"}
		}
		parentID := resolved[0].ID
		pad.Metadata.ParentID = &parentID
	}

	if len(tagNames) > 0 {
		if err := validateTagsExist(store, scope, tagNames); err != nil {
			return nil, err
		}
		pad.Metadata.Tags = append([]string(nil), tagNames...)
		pad.Metadata.SortTags()
	}

	if err := store.SavePad(scope, types.BucketActive, &pad); err != nil {
		return nil, err
	}

	if pad.Metadata.ParentID != nil {
		if err := todos.PropagateStatusChange(store, scope, pad.Metadata.ParentID); err != nil {
			return nil, err
		}
	}

	result := &CmdResult{}
	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}
	if dp := index.FindByID(roots, pad.Metadata.ID, func(idx index.DisplayIndex) bool {
		return idx.Kind == index.Regular
	}); dp != nil {
		result.AffectedPads = append(result.AffectedPads, index.DisplayPad{Pad: dp.Pad, Index: dp.Index})
	}
	result.AddMessage(Success("Pad created: %s", pad.Metadata.Title))
	return result, nil
}

// validateTagsExist checks each name against the registry, per the facade
// contract that the store itself does not enforce.
func validateTagsExist(store storage.DataStore, scope types.Scope, names []string) error {
	registry, err := store.LoadTags(scope)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(registry))
	for _, t := range registry {
		known[t.Name] = true
	}
	for _, name := range names {
		if !known[name] {
			return &ValidationError{Message: "Tag '" + name + "' not found. Create it first with 'padz tags create " + name + "'"}
		}
	}
	return nil
}
