package commands

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// IndexedPads lists the active and deleted buckets fused and builds the
// canonical tree. Every selector resolves against this tree, so filters on
// a view can never renumber anything.
func IndexedPads(store storage.DataStore, scope types.Scope) ([]index.DisplayPad, error) {
	active, err := store.ListPads(scope, types.BucketActive)
	if err != nil {
		return nil, err
	}
	deleted, err := store.ListPads(scope, types.BucketDeleted)
	if err != nil {
		return nil, err
	}
	return index.IndexPads(append(active, deleted...)), nil
}

// Resolved pairs a selector's full path with the pad id it resolved to.
type Resolved struct {
	Path []index.DisplayIndex
	ID   uuid.UUID
}

// ResolveSelectors maps selectors to pad ids over the linearized canonical
// tree. With checkProtection set (delete-like operations), a resolved pad
// with delete_protected fails the whole batch.
func ResolveSelectors(store storage.DataStore, scope types.Scope, selectors []index.Selector, checkProtection bool) ([]Resolved, error) {
	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}
	linearized := index.Linearize(roots)

	gate := func(dp *index.DisplayPad) error {
		if checkProtection && dp.Pad.Metadata.DeleteProtected {
			return &DeleteProtectedError{}
		}
		return nil
	}

	var results []Resolved
	for _, sel := range selectors {
		switch sel.Kind {
		case index.SelectorPath:
			entry := findEntry(linearized, sel.Path)
			if entry == nil {
				return nil, &SelectorNotFoundError{Path: index.FormatPath(sel.Path)}
			}
			if err := gate(entry.Pad); err != nil {
				return nil, err
			}
			results = append(results, Resolved{Path: entry.Path, ID: entry.Pad.Pad.Metadata.ID})

		case index.SelectorRange:
			startPos := findEntryPos(linearized, sel.Start)
			if startPos < 0 {
				return nil, &SelectorNotFoundError{Path: index.FormatPath(sel.Start)}
			}
			endPos := findEntryPos(linearized, sel.End)
			if endPos < 0 {
				return nil, &SelectorNotFoundError{Path: index.FormatPath(sel.End)}
			}
			if startPos > endPos {
				return nil, &InvalidRangeError{
					Message: index.FormatPath(sel.Start) + " appears after " + index.FormatPath(sel.End) + " in the list",
				}
			}
			for _, entry := range linearized[startPos : endPos+1] {
				if err := gate(entry.Pad); err != nil {
					return nil, err
				}
				results = append(results, Resolved{Path: entry.Path, ID: entry.Pad.Pad.Metadata.ID})
			}

		case index.SelectorTitle:
			termLower := strings.ToLower(sel.Term)
			var matches []index.Entry
			for _, entry := range linearized {
				if strings.Contains(strings.ToLower(entry.Pad.Pad.Metadata.Title), termLower) ||
					strings.Contains(strings.ToLower(entry.Pad.Pad.Content), termLower) {
					matches = append(matches, entry)
				}
			}
			switch len(matches) {
			case 0:
				return nil, &NoMatchError{Term: sel.Term}
			case 1:
				if err := gate(matches[0].Pad); err != nil {
					return nil, err
				}
				results = append(results, Resolved{Path: matches[0].Path, ID: matches[0].Pad.Pad.Metadata.ID})
			default:
				return nil, &SelectorAmbiguousError{Term: sel.Term, Count: len(matches)}
			}
		}
	}

	// Deduplicate by full path, first occurrence wins.
	seen := map[string]bool{}
	deduped := results[:0]
	for _, r := range results {
		key := index.FormatPath(r.Path)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, r)
	}
	return deduped, nil
}

func findEntry(linearized []index.Entry, path []index.DisplayIndex) *index.Entry {
	pos := findEntryPos(linearized, path)
	if pos < 0 {
		return nil
	}
	return &linearized[pos]
}

func findEntryPos(linearized []index.Entry, path []index.DisplayIndex) int {
	for i, entry := range linearized {
		if index.PathsEqual(entry.Path, path) {
			return i
		}
	}
	return -1
}

// PadsBySelectors resolves selectors and loads each pad, flattened with its
// local (last-segment) index.
func PadsBySelectors(store storage.DataStore, scope types.Scope, selectors []index.Selector, checkProtection bool) ([]index.DisplayPad, error) {
	resolved, err := ResolveSelectors(store, scope, selectors, checkProtection)
	if err != nil {
		return nil, err
	}
	pads := make([]index.DisplayPad, 0, len(resolved))
	for _, r := range resolved {
		pad, err := GetPadAnyBucket(store, scope, r.ID)
		if err != nil {
			return nil, err
		}
		pads = append(pads, index.DisplayPad{Pad: *pad, Index: r.Path[len(r.Path)-1]})
	}
	return pads, nil
}

// GetPadAnyBucket loads a pad whichever of the user-visible buckets it
// lives in (active first, then deleted).
func GetPadAnyBucket(store storage.DataStore, scope types.Scope, id uuid.UUID) (*types.Pad, error) {
	pad, err := store.GetPad(scope, types.BucketActive, id)
	if err == nil {
		return pad, nil
	}
	if !storage.IsNotFound(err) {
		return nil, err
	}
	return store.GetPad(scope, types.BucketDeleted, id)
}

// DeletePadAnyBucket removes a pad from whichever user-visible bucket holds
// it.
func DeletePadAnyBucket(store storage.DataStore, scope types.Scope, id uuid.UUID) error {
	err := store.DeletePad(scope, types.BucketDeleted, id)
	if err == nil {
		return nil
	}
	if !storage.IsNotFound(err) {
		return err
	}
	return store.DeletePad(scope, types.BucketActive, id)
}

// DescendantIDs collects the ids of every descendant of the target pads in
// the canonical tree (the targets themselves excluded).
func DescendantIDs(store storage.DataStore, scope types.Scope, targets []uuid.UUID) ([]uuid.UUID, error) {
	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}
	var out []uuid.UUID
	for _, target := range targets {
		if node := index.FindByID(roots, target, nil); node != nil {
			collectSubtreeIDs(node, &out)
		}
	}
	return out, nil
}

func collectSubtreeIDs(dp *index.DisplayPad, out *[]uuid.UUID) {
	for i := range dp.Children {
		child := &dp.Children[i]
		*out = append(*out, child.Pad.Metadata.ID)
		collectSubtreeIDs(child, out)
	}
}
