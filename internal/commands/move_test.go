package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

func TestMoveUnderDestination(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Dest", nil)
	mustCreate(t, store, "Mover", nil)

	// Mover is newest: index 1. Dest: index 2.
	dest := sel(t, "2")
	_, err := Move(store, types.ScopeProject, []index.Selector{sel(t, "1")}, &dest)
	require.NoError(t, err)

	paths := listedPaths(t, store, FilterActive)
	assert.Equal(t, map[string]string{
		"1":   "Dest",
		"1.1": "Mover",
	}, paths)
}

func TestMoveToRoot(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Parent", nil)
	parent := sel(t, "1")
	mustCreate(t, store, "Child", &parent)

	_, err := Move(store, types.ScopeProject, []index.Selector{sel(t, "1.1")}, nil)
	require.NoError(t, err)

	paths := listedPaths(t, store, FilterActive)
	assert.Equal(t, map[string]string{
		"1": "Child",
		"2": "Parent",
	}, paths)
}

func TestMoveIntoSelfIsCycle(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Solo", nil)

	dest := sel(t, "1")
	_, err := Move(store, types.ScopeProject, []index.Selector{sel(t, "1")}, &dest)
	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
}

func TestMoveIntoDescendantIsCycle(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Ancestor", nil)
	parent := sel(t, "1")
	mustCreate(t, store, "Middle", &parent)
	middle := sel(t, "1.1")
	mustCreate(t, store, "Leaf", &middle)

	// Moving the ancestor under its grandchild closes a cycle.
	dest := sel(t, "1.1.1")
	_, err := Move(store, types.ScopeProject, []index.Selector{sel(t, "1")}, &dest)
	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)

	// Tree unchanged.
	paths := listedPaths(t, store, FilterActive)
	assert.Contains(t, paths, "1.1.1")
}

func TestMoveAlreadyAtDestination(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "Parent", nil)
	parent := sel(t, "1")
	mustCreate(t, store, "Child", &parent)

	dest := sel(t, "1")
	result, err := Move(store, types.ScopeProject, []index.Selector{sel(t, "1.1")}, &dest)
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0].Content, "already at destination")
}

func TestMoveRederivesBothParents(t *testing.T) {
	store := storage.NewMemStore()
	mustCreate(t, store, "OldParent", nil)
	oldParent := sel(t, "1")
	mustCreate(t, store, "DoneChild", &oldParent)
	_, err := Complete(store, types.ScopeProject, []index.Selector{sel(t, "1.1")})
	require.NoError(t, err)
	mustCreate(t, store, "NewParent", nil)

	// OldParent derived Done from its single done child.
	status := func(title string) types.TodoStatus {
		roots, err := IndexedPads(store, types.ScopeProject)
		require.NoError(t, err)
		for _, entry := range index.Linearize(roots) {
			if entry.Pad.Pad.Metadata.Title == title {
				return entry.Pad.Pad.Metadata.Status
			}
		}
		t.Fatalf("pad %s not found", title)
		return ""
	}
	assert.Equal(t, types.StatusDone, status("OldParent"))

	// NewParent is newest root: index 1. OldParent: 2, child at 2.1.
	dest := sel(t, "1")
	_, err = Move(store, types.ScopeProject, []index.Selector{sel(t, "2.1")}, &dest)
	require.NoError(t, err)

	// The new parent now derives Done from the moved child.
	assert.Equal(t, types.StatusDone, status("NewParent"))
}
