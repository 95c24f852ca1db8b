package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/padz/internal/commands"
	"github.com/arthur-debert/padz/internal/config"
	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

func newTestAPI(t *testing.T) *PadzAPI {
	t.Helper()
	return New(storage.NewMemStore(), commands.ScopePaths{
		Project: t.TempDir(),
		Global:  t.TempDir(),
	}, config.Default())
}

func TestParseSelectorsPathsAndRanges(t *testing.T) {
	selectors, err := ParseSelectors([]string{"1", "p2", "d3", "1.2", "2-4"})
	require.NoError(t, err)
	require.Len(t, selectors, 5)
	assert.Equal(t, index.SelectorPath, selectors[0].Kind)
	assert.Equal(t, index.SelectorPath, selectors[3].Kind)
	assert.Equal(t, index.SelectorRange, selectors[4].Kind)
}

func TestParseSelectorsFallbackToTitle(t *testing.T) {
	// One unparseable token turns the whole batch into one title query.
	selectors, err := ParseSelectors([]string{"groceries", "for", "tuesday"})
	require.NoError(t, err)
	require.Len(t, selectors, 1)
	assert.Equal(t, index.SelectorTitle, selectors[0].Kind)
	assert.Equal(t, "groceries for tuesday", selectors[0].Term)
}

func TestParseSelectorsMixedFallsBack(t *testing.T) {
	selectors, err := ParseSelectors([]string{"1", "oops"})
	require.NoError(t, err)
	require.Len(t, selectors, 1)
	assert.Equal(t, index.SelectorTitle, selectors[0].Kind)
	assert.Equal(t, "1 oops", selectors[0].Term)
}

func TestNormalizeToDeleted(t *testing.T) {
	cases := map[string]string{
		"1":     "d1",
		"42":    "d42",
		"d1":    "d1",
		"p1":    "p1",
		"3-5":   "d3-d5",
		"d3-d5": "d3-d5",
		"3-d5":  "d3-d5",
		"d3-5":  "d3-d5",
		"abc":   "abc",
		"":      "",
	}
	for input, want := range cases {
		assert.Equal(t, want, normalizeToDeleted(input), input)
	}
}

func TestParseSelectorsForDeleted(t *testing.T) {
	selectors, err := ParseSelectorsForDeleted([]string{"1", "3", "d5"})
	require.NoError(t, err)
	require.Len(t, selectors, 3)
	assert.Equal(t, []index.DisplayIndex{{Kind: index.Deleted, N: 1}}, selectors[0].Path)
	assert.Equal(t, []index.DisplayIndex{{Kind: index.Deleted, N: 3}}, selectors[1].Path)
	assert.Equal(t, []index.DisplayIndex{{Kind: index.Deleted, N: 5}}, selectors[2].Path)
}

func TestParseSelectorsForDeletedRange(t *testing.T) {
	selectors, err := ParseSelectorsForDeleted([]string{"1-3"})
	require.NoError(t, err)
	require.Len(t, selectors, 1)
	require.Equal(t, index.SelectorRange, selectors[0].Kind)
	assert.Equal(t, "d1", index.FormatPath(selectors[0].Start))
	assert.Equal(t, "d3", index.FormatPath(selectors[0].End))
}

func TestEndToEndCreateListDelete(t *testing.T) {
	padz := newTestAPI(t)

	_, err := padz.CreatePad(types.ScopeProject, "First", "", "", nil)
	require.NoError(t, err)
	_, err = padz.CreatePad(types.ScopeProject, "Second", "body text", "", nil)
	require.NoError(t, err)

	result, err := padz.GetPads(types.ScopeProject, commands.PadFilter{Status: commands.FilterActive})
	require.NoError(t, err)
	require.Len(t, result.ListedPads, 2)
	assert.Equal(t, "Second", result.ListedPads[0].Pad.Metadata.Title)

	_, err = padz.DeletePads(types.ScopeProject, []string{"1"})
	require.NoError(t, err)

	// Restore addresses the deleted listing with a bare number.
	_, err = padz.RestorePads(types.ScopeProject, []string{"1"})
	require.NoError(t, err)

	result, err = padz.GetPads(types.ScopeProject, commands.PadFilter{Status: commands.FilterActive})
	require.NoError(t, err)
	assert.Len(t, result.ListedPads, 2)
}

func TestEndToEndTitleSelector(t *testing.T) {
	padz := newTestAPI(t)
	_, err := padz.CreatePad(types.ScopeProject, "Grocery run", "", "", nil)
	require.NoError(t, err)

	result, err := padz.ViewPads(types.ScopeProject, []string{"grocery", "run"})
	require.NoError(t, err)
	require.Len(t, result.ListedPads, 1)
	assert.Equal(t, "Grocery run", result.ListedPads[0].Pad.Metadata.Title)
}

func TestEndToEndNestedCreate(t *testing.T) {
	padz := newTestAPI(t)
	_, err := padz.CreatePad(types.ScopeProject, "Parent", "", "", nil)
	require.NoError(t, err)
	_, err = padz.CreatePad(types.ScopeProject, "Child", "", "1", nil)
	require.NoError(t, err)

	result, err := padz.GetPads(types.ScopeProject, commands.PadFilter{Status: commands.FilterActive})
	require.NoError(t, err)
	require.Len(t, result.ListedPads, 1)
	require.Len(t, result.ListedPads[0].Children, 1)
	assert.Equal(t, "Child", result.ListedPads[0].Children[0].Pad.Metadata.Title)
}

func TestEndToEndTagFlow(t *testing.T) {
	padz := newTestAPI(t)
	_, err := padz.TagCreate(types.ScopeProject, "work")
	require.NoError(t, err)
	_, err = padz.CreatePad(types.ScopeProject, "Tagged", "", "", []string{"work"})
	require.NoError(t, err)

	_, err = padz.TagRename(types.ScopeProject, "work", "office")
	require.NoError(t, err)

	result, err := padz.GetPads(types.ScopeProject, commands.PadFilter{
		Status:       commands.FilterActive,
		RequiredTags: []string{"office"},
	})
	require.NoError(t, err)
	assert.Len(t, result.ListedPads, 1)
}
