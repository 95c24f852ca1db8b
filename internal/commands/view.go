package commands

import (
	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// View resolves selectors and returns the matching pads with content, in
// selector order.
func View(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	pads, err := PadsBySelectors(store, scope, selectors, false)
	if err != nil {
		return nil, err
	}
	return &CmdResult{ListedPads: pads}, nil
}

// Paths resolves selectors and returns the content-file path of each pad,
// for external tools like the editor.
func Paths(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
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
		bucket := types.BucketActive
		if pad.Metadata.IsDeleted {
			bucket = types.BucketDeleted
		}
		path, err := store.PadPath(scope, bucket, r.ID)
		if err != nil {
			return nil, err
		}
		result.PadPaths = append(result.PadPaths, path)
	}
	return result, nil
}
