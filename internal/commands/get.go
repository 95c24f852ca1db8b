package commands

import (
	"sort"
	"strings"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// StatusFilter picks which index namespaces a listing shows.
type StatusFilter int

const (
	FilterActive StatusFilter = iota
	FilterDeleted
	FilterPinned
	FilterAll
)

// PadFilter is the read-side filter for Get.
type PadFilter struct {
	Status     StatusFilter
	SearchTerm string
	// TodoStatus restricts to one todo status when non-nil.
	TodoStatus *types.TodoStatus
	// RequiredTags keeps only pads carrying every listed tag.
	RequiredTags []string
}

// Get lists pads through the canonical indexer and then filters the tree.
// Filters only prune; they never renumber, so a surviving pad keeps the
// index it has in the unfiltered view.
func Get(store storage.DataStore, scope types.Scope, filter PadFilter) (*CmdResult, error) {
	roots, err := IndexedPads(store, scope)
	if err != nil {
		return nil, err
	}

	filtered := filterTree(roots, filter.Status)
	if filter.TodoStatus != nil {
		filtered = filterByTodoStatus(filtered, *filter.TodoStatus)
	}
	if len(filter.RequiredTags) > 0 {
		filtered = filterByTags(filtered, filter.RequiredTags)
	}
	if filter.SearchTerm != "" {
		filtered = searchTree(filtered, filter.SearchTerm)
	}

	return &CmdResult{ListedPads: filtered}, nil
}

// filterTree prunes by index namespace.
//
//   - Active: non-deleted pads; subtrees under a deleted pad vanish.
//   - Deleted: deleted pads with ALL their children (children inherit
//     visibility from a deleted ancestor), plus active ancestors kept as
//     context when something deleted sits beneath them.
//   - Pinned: pinned pads, recursively.
//   - All: everything.
func filterTree(pads []index.DisplayPad, status StatusFilter) []index.DisplayPad {
	var out []index.DisplayPad
	for _, dp := range pads {
		if kept, ok := filterPad(dp, status); ok {
			out = append(out, kept)
		}
	}
	return out
}

func filterPad(dp index.DisplayPad, status StatusFilter) (index.DisplayPad, bool) {
	if status == FilterDeleted {
		if dp.Index.Kind == index.Deleted {
			// Children inherit visibility from their deleted ancestor.
			return dp, true
		}
		if dp.Index.Kind == index.Pinned {
			// The regular-pass duplicate carries the subtree.
			return index.DisplayPad{}, false
		}
		dp.Children = filterTree(dp.Children, status)
		return dp, len(dp.Children) > 0
	}

	if !matchesStatus(dp.Index, status) {
		return index.DisplayPad{}, false
	}
	dp.Children = filterTree(dp.Children, status)
	return dp, true
}

func matchesStatus(idx index.DisplayIndex, status StatusFilter) bool {
	switch status {
	case FilterAll:
		return true
	case FilterActive:
		return idx.Kind != index.Deleted
	case FilterDeleted:
		return idx.Kind == index.Deleted
	case FilterPinned:
		return idx.Kind == index.Pinned
	}
	return false
}

func filterByTodoStatus(pads []index.DisplayPad, status types.TodoStatus) []index.DisplayPad {
	var out []index.DisplayPad
	for _, dp := range pads {
		dp.Children = filterByTodoStatus(dp.Children, status)
		if dp.Pad.Metadata.Status == status {
			out = append(out, dp)
		}
	}
	return out
}

func filterByTags(pads []index.DisplayPad, required []string) []index.DisplayPad {
	var out []index.DisplayPad
	for _, dp := range pads {
		dp.Children = filterByTags(dp.Children, required)
		if hasAllTags(&dp.Pad.Metadata, required) {
			out = append(out, dp)
		}
	}
	return out
}

func hasAllTags(meta *types.Metadata, required []string) bool {
	filter := types.AttrFilter{Name: "tags", Op: types.OpContainsAll, Value: types.ListValue(required)}
	return filter.Matches(meta)
}

// searchTree keeps pads matching the term in title or content, recording
// match lines for the renderer. Title hits score 10, content-line hits 5;
// results order by score descending, then title length, then created_at.
func searchTree(pads []index.DisplayPad, term string) []index.DisplayPad {
	termLower := strings.ToLower(term)

	type scored struct {
		pad   index.DisplayPad
		score int
	}
	var matches []scored

	for _, dp := range pads {
		var found []index.SearchMatch
		score := 0

		title := dp.Pad.Metadata.Title
		if strings.Contains(strings.ToLower(title), termLower) {
			score += 10
			found = append(found, index.SearchMatch{
				LineNumber: 0,
				Segments:   highlightMatches(title, termLower),
			})
		}

		for i, line := range strings.Split(dp.Pad.Content, "\n") {
			if i == 0 {
				// First content line duplicates the title.
				continue
			}
			if strings.Contains(strings.ToLower(line), termLower) {
				score += 5
				if len(found) < 4 {
					found = append(found, index.SearchMatch{
						LineNumber: i + 1,
						Segments:   highlightMatches(line, termLower),
					})
				}
			}
		}

		if score > 0 {
			dp.Matches = found
			matches = append(matches, scored{pad: dp, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.score != b.score {
			return a.score > b.score
		}
		la, lb := len(a.pad.Pad.Metadata.Title), len(b.pad.Pad.Metadata.Title)
		if la != lb {
			return la < lb
		}
		return a.pad.Pad.Metadata.CreatedAt.Before(b.pad.Pad.Metadata.CreatedAt)
	})

	out := make([]index.DisplayPad, len(matches))
	for i, m := range matches {
		out[i] = m.pad
	}
	return out
}

// highlightMatches splits text into plain and matched runs for every
// case-insensitive occurrence of the term.
func highlightMatches(text, termLower string) []index.MatchSegment {
	var segments []index.MatchSegment
	textLower := strings.ToLower(text)
	termLen := len(termLower)
	last := 0

	for start := 0; ; {
		rel := strings.Index(textLower[start:], termLower)
		if rel < 0 {
			break
		}
		pos := start + rel
		if pos > last {
			segments = append(segments, index.MatchSegment{Text: text[last:pos]})
		}
		segments = append(segments, index.MatchSegment{Text: text[pos : pos+termLen], Matched: true})
		last = pos + termLen
		start = last
	}

	if last < len(text) {
		segments = append(segments, index.MatchSegment{Text: text[last:]})
	}
	return segments
}
