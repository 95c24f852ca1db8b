package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

func TestResolveEveryCanonicalPath(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Root", nil)
	parent := sel(t, "1")
	mustCreate(t, store, "Child", &parent)
	child := sel(t, "1.1")
	mustCreate(t, store, "Grandchild", &child)
	mustCreate(t, store, "Pinned", nil)
	_, err := Pin(store, types.ScopeProject, []index.Selector{sel(t, "1")})
	require.NoError(t, err)

	// Parsing the stringified full path of any pad resolves to that pad.
	roots, err := IndexedPads(store, types.ScopeProject)
	require.NoError(t, err)
	for _, entry := range index.Linearize(roots) {
		path := index.FormatPath(entry.Path)
		resolved, err := ResolveSelectors(store, types.ScopeProject, []index.Selector{sel(t, path)}, false)
		require.NoError(t, err, path)
		require.Len(t, resolved, 1, path)
		assert.Equal(t, entry.Pad.Pad.Metadata.ID, resolved[0].ID, path)
	}
}

func TestResolveUnknownPath(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Only", nil)

	_, err := ResolveSelectors(store, types.ScopeProject, []index.Selector{sel(t, "9")}, false)
	require.Error(t, err)
	var notFound *SelectorNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Index 9 not found")
}

func TestResolveRangeInclusive(t *testing.T) {
	store := storage.NewMemStore()
	for _, title := range []string{"A", "B", "C", "D", "E"} {
		mustCreate(t, store, title, nil)
	}

	resolved, err := ResolveSelectors(store, types.ScopeProject, []index.Selector{sel(t, "2-4")}, false)
	require.NoError(t, err)
	assert.Len(t, resolved, 3)
}

func TestResolveRangeReversed(t *testing.T) {
	store := storage.NewMemStore()
	for _, title := range []string{"A", "B", "C"} {
		mustCreate(t, store, title, nil)
	}

	_, err := ResolveSelectors(store, types.ScopeProject, []index.Selector{sel(t, "3-1")}, false)
	require.Error(t, err)
	var invalid *InvalidRangeError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "Invalid range")
}

func TestResolveRangeMissingEndpoint(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "A", nil)

	_, err := ResolveSelectors(store, types.ScopeProject, []index.Selector{sel(t, "1-5")}, false)
	require.Error(t, err)
	var notFound *SelectorNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveTitleQuery(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Grocery list", nil)
	mustCreate(t, store, "Work notes", nil)

	resolved, err := ResolveSelectors(store, types.ScopeProject,
		[]index.Selector{index.TitleSelector("grocery")}, false)
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	// Zero matches fail loudly.
	_, err = ResolveSelectors(store, types.ScopeProject,
		[]index.Selector{index.TitleSelector("absent")}, false)
	var noMatch *NoMatchError
	require.ErrorAs(t, err, &noMatch)

	// Multiple matches demand a tighter term.
	mustCreate(t, store, "Grocery extras", nil)
	_, err = ResolveSelectors(store, types.ScopeProject,
		[]index.Selector{index.TitleSelector("grocery")}, false)
	var ambiguous *SelectorAmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, 2, ambiguous.Count)
}

func TestResolveTitleMatchesContent(t *testing.T) {
	store := storage.NewMemStore()
	_, err := Create(store, types.ScopeProject, "Opaque", "the needle is in here", nil, nil)
	require.NoError(t, err)

	resolved, err := ResolveSelectors(store, types.ScopeProject,
		[]index.Selector{index.TitleSelector("needle")}, false)
	require.NoError(t, err)
	assert.Len(t, resolved, 1)
}

func TestResolveDeleteProtection(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Precious", nil)
	_, err := Pin(store, types.ScopeProject, []index.Selector{sel(t, "1")})
	require.NoError(t, err)

	// Delete-like resolution rejects the protected pad.
	_, err = ResolveSelectors(store, types.ScopeProject, []index.Selector{sel(t, "1")}, true)
	var protected *DeleteProtectedError
	require.ErrorAs(t, err, &protected)

	// Non-delete resolution is fine.
	_, err = ResolveSelectors(store, types.ScopeProject, []index.Selector{sel(t, "1")}, false)
	assert.NoError(t, err)
}

func TestDeleteProtectedPadFails(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Pinned", nil)
	_, err := Pin(store, types.ScopeProject, []index.Selector{sel(t, "1")})
	require.NoError(t, err)

	_, err = Delete(store, types.ScopeProject, []index.Selector{sel(t, "1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete protected")

	// Nothing moved.
	assert.Len(t, listedPaths(t, store, FilterActive), 2) // p1 and 1, dual indexed
}

func TestResolveDeduplicatesByPath(t *testing.T) {
	store := storage.NewMemStore()
	for _, title := range []string{"A", "B", "C"} {
		mustCreate(t, store, title, nil)
	}

	// Overlapping selectors: "2" appears in both.
	resolved, err := ResolveSelectors(store, types.ScopeProject,
		[]index.Selector{sel(t, "1-2"), sel(t, "2-3")}, false)
	require.NoError(t, err)
	assert.Len(t, resolved, 3)
}
