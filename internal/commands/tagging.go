package commands

import (
	"strings"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// AddTags adds tags to the selected pads. The tags must exist in the
// registry; adding a tag a pad already has is a no-op. Tag lists stay
// sorted after mutation.
func AddTags(store storage.DataStore, scope types.Scope, selectors []index.Selector, tagNames []string) (*CmdResult, error) {
	if len(tagNames) == 0 {
		return nil, &ValidationError{Message: "No tags specified"}
	}
	if err := validateTagsExist(store, scope, tagNames); err != nil {
		return nil, err
	}

	resolved, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	modified := 0

	for _, r := range resolved {
		pad, err := store.GetPad(scope, types.BucketActive, r.ID)
		if err != nil {
			return nil, err
		}

		before := len(pad.Metadata.Tags)
		next := append([]string(nil), pad.Metadata.Tags...)
		for _, tag := range tagNames {
			if !pad.Metadata.HasTag(tag) && !contains(next, tag) {
				next = append(next, tag)
			}
		}

		if len(next) > before {
			effect, _ := pad.Metadata.SetAttr("tags", types.ListValue(next))
			if effect.Kind == types.EffectValidateTags {
				if err := validateTagsExist(store, scope, effect.Tags); err != nil {
					return nil, err
				}
			}
			pad.Metadata.SortTags()
			pad.Metadata.UpdatedAt = types.NowUTC()
			if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
				return nil, err
			}
			modified++
		}

		result.AffectedPads = append(result.AffectedPads, index.DisplayPad{
			Pad:   *pad,
			Index: r.Path[len(r.Path)-1],
		})
	}

	list := strings.Join(tagNames, ", ")
	if modified > 0 {
		result.AddMessage(Success("Added tag%s [%s] to %d pad%s", plural(len(tagNames)), list, modified, plural(modified)))
	} else {
		result.AddMessage(Info("All pads already have tag%s [%s]", plural(len(tagNames)), list))
	}
	return result, nil
}

// RemoveTags removes tags from the selected pads. Removing an absent tag is
// a no-op.
func RemoveTags(store storage.DataStore, scope types.Scope, selectors []index.Selector, tagNames []string) (*CmdResult, error) {
	if len(tagNames) == 0 {
		return nil, &ValidationError{Message: "No tags specified"}
	}

	resolved, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	modified := 0

	for _, r := range resolved {
		pad, err := store.GetPad(scope, types.BucketActive, r.ID)
		if err != nil {
			return nil, err
		}

		before := len(pad.Metadata.Tags)
		var next []string
		for _, t := range pad.Metadata.Tags {
			if !contains(tagNames, t) {
				next = append(next, t)
			}
		}

		if len(next) < before {
			pad.Metadata.SetAttr("tags", types.ListValue(next))
			pad.Metadata.SortTags()
			pad.Metadata.UpdatedAt = types.NowUTC()
			if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
				return nil, err
			}
			modified++
		}

		result.AffectedPads = append(result.AffectedPads, index.DisplayPad{
			Pad:   *pad,
			Index: r.Path[len(r.Path)-1],
		})
	}

	list := strings.Join(tagNames, ", ")
	if modified > 0 {
		result.AddMessage(Success("Removed tag%s [%s] from %d pad%s", plural(len(tagNames)), list, modified, plural(modified)))
	} else {
		result.AddMessage(Info("No pads had tag%s [%s]", plural(len(tagNames)), list))
	}
	return result, nil
}

// ClearTags removes every tag from the selected pads.
func ClearTags(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	resolved, err := ResolveSelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	modified := 0

	for _, r := range resolved {
		pad, err := store.GetPad(scope, types.BucketActive, r.ID)
		if err != nil {
			return nil, err
		}

		if len(pad.Metadata.Tags) > 0 {
			pad.Metadata.SetAttr("tags", types.ListValue(nil))
			pad.Metadata.UpdatedAt = types.NowUTC()
			if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
				return nil, err
			}
			modified++
		}

		result.AffectedPads = append(result.AffectedPads, index.DisplayPad{
			Pad:   *pad,
			Index: r.Path[len(r.Path)-1],
		})
	}

	if modified > 0 {
		result.AddMessage(Success("Cleared tags from %d pad%s", modified, plural(modified)))
	} else {
		result.AddMessage(Info("No pads had tags"))
	}
	return result, nil
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
