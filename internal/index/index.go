// Package index assigns canonical display indexes to pads and parses the
// user-facing selector grammar.
//
// Pads carry two identifiers. The UUID is the immutable internal one; the
// display index is what users type. Naively numbering the current view
// 1..N would make indexes drift under filters, so indexes are assigned from
// a canonical ordering of the full tree: `padz delete 2` targets the same
// pad no matter what filter produced the listing.
//
// Ordering per sibling group (each parent has its own counters):
//
//   - siblings sort by created_at descending (newest = 1)
//   - pinned pass: pinned, non-deleted pads get p1, p2, ...
//   - regular pass: every non-deleted pad gets 1, 2, ... — pinned pads
//     appear again here, so a pad's regular index survives pin/unpin
//   - deleted pass: deleted pads get d1, d2, ...
//
// Nested paths join segments with dots: 1.2, 2.p1, 1.d3.
package index

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/types"
)

// IndexKind discriminates the three display-index namespaces.
type IndexKind int

const (
	Regular IndexKind = iota
	Pinned
	Deleted
)

// DisplayIndex is one typed per-parent index: Regular(n) prints as "n",
// Pinned(n) as "pn", Deleted(n) as "dn".
type DisplayIndex struct {
	Kind IndexKind
	N    int
}

func (d DisplayIndex) String() string {
	switch d.Kind {
	case Pinned:
		return "p" + strconv.Itoa(d.N)
	case Deleted:
		return "d" + strconv.Itoa(d.N)
	default:
		return strconv.Itoa(d.N)
	}
}

// ParseDisplayIndex parses a single segment: "3", "p1", or "d2".
func ParseDisplayIndex(s string) (DisplayIndex, error) {
	if rest, ok := strings.CutPrefix(s, "p"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
			return DisplayIndex{Kind: Pinned, N: n}, nil
		}
		return DisplayIndex{}, fmt.Errorf("invalid index format: %s", s)
	}
	if rest, ok := strings.CutPrefix(s, "d"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
			return DisplayIndex{Kind: Deleted, N: n}, nil
		}
		return DisplayIndex{}, fmt.Errorf("invalid index format: %s", s)
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return DisplayIndex{Kind: Regular, N: n}, nil
	}
	return DisplayIndex{}, fmt.Errorf("invalid index format: %s", s)
}

// FormatPath renders a dot-joined path.
func FormatPath(path []DisplayIndex) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = idx.String()
	}
	return strings.Join(parts, ".")
}

// PathsEqual compares two paths segment by segment.
func PathsEqual(a, b []DisplayIndex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MatchSegment is a run of plain or matched text within a search-match
// line.
type MatchSegment struct {
	Text    string
	Matched bool
}

// SearchMatch records one matching line: 0 for the title, 1+ for content
// lines.
type SearchMatch struct {
	LineNumber int
	Segments   []MatchSegment
}

// DisplayPad pairs a pad with its canonical index and indexed children.
type DisplayPad struct {
	Pad      types.Pad
	Index    DisplayIndex
	Matches  []SearchMatch
	Children []DisplayPad
}

// IndexPads assigns canonical display indexes to an unordered pad list,
// returning the indexed forest. Pinned, non-deleted pads appear twice at
// their level (dual indexing). Listing code must always go through here;
// enumerating pads by hand breaks the canonical index association.
func IndexPads(pads []types.Pad) []DisplayPad {
	byParent := map[uuid.UUID][]types.Pad{}
	var roots []types.Pad
	for _, pad := range pads {
		if pad.Metadata.ParentID == nil {
			roots = append(roots, pad)
		} else {
			byParent[*pad.Metadata.ParentID] = append(byParent[*pad.Metadata.ParentID], pad)
		}
	}
	return indexLevel(roots, byParent)
}

// indexLevel applies the three-pass indexing to one sibling group and
// recurses into children.
func indexLevel(pads []types.Pad, byParent map[uuid.UUID][]types.Pad) []DisplayPad {
	sort.SliceStable(pads, func(i, j int) bool {
		a, b := pads[i].Metadata, pads[j].Metadata
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	var results []DisplayPad
	emit := func(pad types.Pad, idx DisplayIndex) {
		children := indexLevel(byParent[pad.Metadata.ID], byParent)
		results = append(results, DisplayPad{Pad: pad, Index: idx, Children: children})
	}

	k := 1
	for _, pad := range pads {
		if pad.Metadata.IsPinned && !pad.Metadata.IsDeleted {
			emit(pad, DisplayIndex{Kind: Pinned, N: k})
			k++
		}
	}

	k = 1
	for _, pad := range pads {
		if !pad.Metadata.IsDeleted {
			emit(pad, DisplayIndex{Kind: Regular, N: k})
			k++
		}
	}

	k = 1
	for _, pad := range pads {
		if pad.Metadata.IsDeleted {
			emit(pad, DisplayIndex{Kind: Deleted, N: k})
			k++
		}
	}

	return results
}

// Entry is one row of a linearized tree: the full dot path plus the pad.
type Entry struct {
	Path []DisplayIndex
	Pad  *DisplayPad
}

// Linearize flattens an indexed forest in emission order, pairing each pad
// with its full path. Range selectors resolve over this list.
func Linearize(roots []DisplayPad) []Entry {
	var out []Entry
	var walk func(dp *DisplayPad, prefix []DisplayIndex)
	walk = func(dp *DisplayPad, prefix []DisplayIndex) {
		path := make([]DisplayIndex, len(prefix)+1)
		copy(path, prefix)
		path[len(prefix)] = dp.Index
		out = append(out, Entry{Path: path, Pad: dp})
		for i := range dp.Children {
			walk(&dp.Children[i], path)
		}
	}
	for i := range roots {
		walk(&roots[i], nil)
	}
	return out
}

// FindByID locates a pad in the forest by UUID, restricted to indexes the
// filter accepts. Pass a nil filter to accept any index kind.
func FindByID(pads []DisplayPad, id uuid.UUID, filter func(DisplayIndex) bool) *DisplayPad {
	for i := range pads {
		dp := &pads[i]
		if dp.Pad.Metadata.ID == id && (filter == nil || filter(dp.Index)) {
			return dp
		}
		if found := FindByID(dp.Children, id, filter); found != nil {
			return found
		}
	}
	return nil
}
