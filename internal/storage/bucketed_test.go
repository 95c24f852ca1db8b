package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/padz/internal/types"
)

func TestSaveAndGetInActive(t *testing.T) {
	store := NewMemStore()
	pad := types.NewPad("Active Pad", "Content")

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	got, err := store.GetPad(types.ScopeProject, types.BucketActive, pad.Metadata.ID)
	require.NoError(t, err)
	assert.Equal(t, "Active Pad", got.Metadata.Title)
	assert.Equal(t, "Active Pad\n\nContent", got.Content)
}

func TestBucketsAreIsolated(t *testing.T) {
	store := NewMemStore()

	active := types.NewPad("Active", "")
	deleted := types.NewPad("Deleted", "")
	archived := types.NewPad("Archived", "")

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &active))
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketDeleted, &deleted))
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketArchived, &archived))

	activePads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	require.Len(t, activePads, 1)
	assert.Equal(t, "Active", activePads[0].Metadata.Title)

	deletedPads, err := store.ListPads(types.ScopeProject, types.BucketDeleted)
	require.NoError(t, err)
	assert.Len(t, deletedPads, 1)

	archivedPads, err := store.ListPads(types.ScopeProject, types.BucketArchived)
	require.NoError(t, err)
	assert.Len(t, archivedPads, 1)
}

func TestScopesAreIsolated(t *testing.T) {
	store := NewMemStore()

	project := types.NewPad("Project Pad", "")
	global := types.NewPad("Global Pad", "")

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &project))
	require.NoError(t, store.SavePad(types.ScopeGlobal, types.BucketActive, &global))

	projectPads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	require.Len(t, projectPads, 1)
	assert.Equal(t, "Project Pad", projectPads[0].Metadata.Title)

	globalPads, err := store.ListPads(types.ScopeGlobal, types.BucketActive)
	require.NoError(t, err)
	require.Len(t, globalPads, 1)
	assert.Equal(t, "Global Pad", globalPads[0].Metadata.Title)
}

func TestMovePadBetweenBuckets(t *testing.T) {
	store := NewMemStore()
	pad := types.NewPad("Moving Pad", "Content")
	id := pad.Metadata.ID

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	moved, err := store.MovePad(types.ScopeProject, types.BucketActive, types.BucketDeleted, id)
	require.NoError(t, err)
	assert.Equal(t, "Moving Pad", moved.Metadata.Title)

	_, err = store.GetPad(types.ScopeProject, types.BucketActive, id)
	assert.True(t, IsNotFound(err))

	inDeleted, err := store.GetPad(types.ScopeProject, types.BucketDeleted, id)
	require.NoError(t, err)
	assert.Equal(t, "Moving Pad", inDeleted.Metadata.Title)
}

func TestMoveSameBucketIsNoop(t *testing.T) {
	store := NewMemStore()
	pad := types.NewPad("Same Bucket", "")
	id := pad.Metadata.ID

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	moved, err := store.MovePad(types.ScopeProject, types.BucketActive, types.BucketActive, id)
	require.NoError(t, err)
	assert.Equal(t, "Same Bucket", moved.Metadata.Title)

	pads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	assert.Len(t, pads, 1)
}

func TestMovePadsBatch(t *testing.T) {
	store := NewMemStore()
	pad1 := types.NewPad("Pad 1", "")
	pad2 := types.NewPad("Pad 2", "")

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad1))
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad2))

	moved, err := store.MovePads(types.ScopeProject, types.BucketActive, types.BucketArchived,
		[]uuid.UUID{pad1.Metadata.ID, pad2.Metadata.ID})
	require.NoError(t, err)
	assert.Len(t, moved, 2)

	activePads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	assert.Empty(t, activePads)

	archivedPads, err := store.ListPads(types.ScopeProject, types.BucketArchived)
	require.NoError(t, err)
	assert.Len(t, archivedPads, 2)
}

func TestDeletePadFromBucket(t *testing.T) {
	store := NewMemStore()
	pad := types.NewPad("To Delete", "")
	id := pad.Metadata.ID

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketDeleted, &pad))
	require.NoError(t, store.DeletePad(types.ScopeProject, types.BucketDeleted, id))

	_, err := store.GetPad(types.ScopeProject, types.BucketDeleted, id)
	assert.True(t, IsNotFound(err))
}

func TestDeleteMissingPad(t *testing.T) {
	store := NewMemStore()
	err := store.DeletePad(types.ScopeProject, types.BucketActive, uuid.New())
	assert.True(t, IsNotFound(err))
}

func TestDoctorEmptyStore(t *testing.T) {
	store := NewMemStore()
	report, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)
	assert.True(t, report.Zero())
}

func TestDeletedBucketNormalizesFlags(t *testing.T) {
	store := NewMemStore()
	// Simulate a migrated legacy record: flags stripped but living in
	// the deleted bucket.
	pad := types.NewPad("Migrated", "")
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketDeleted, &pad))

	got, err := store.GetPad(types.ScopeProject, types.BucketDeleted, pad.Metadata.ID)
	require.NoError(t, err)
	assert.True(t, got.Metadata.IsDeleted)
	assert.NotNil(t, got.Metadata.DeletedAt)

	pads, err := store.ListPads(types.ScopeProject, types.BucketDeleted)
	require.NoError(t, err)
	require.Len(t, pads, 1)
	assert.True(t, pads[0].Metadata.IsDeleted)
}

func TestResolveDuplicatesAfterInterruptedDelete(t *testing.T) {
	store := NewMemStore()
	pad := types.NewPad("Racing", "")
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	// Simulate a delete that crashed between destination write and
	// source removal: a newer flagged copy lands in deleted while the
	// stale copy stays active.
	dupe := pad
	dupe.Metadata.SetAttr("deleted", types.BoolValue(true))
	dupe.Metadata.UpdatedAt = types.NowUTC()
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketDeleted, &dupe))

	require.NoError(t, store.Sync(types.ScopeProject))

	_, err := store.GetPad(types.ScopeProject, types.BucketActive, pad.Metadata.ID)
	assert.True(t, IsNotFound(err))
	_, err = store.GetPad(types.ScopeProject, types.BucketDeleted, pad.Metadata.ID)
	assert.NoError(t, err)
}

func TestTagsAreScopeLevel(t *testing.T) {
	store := NewMemStore()
	tags := []types.TagEntry{
		types.NewTagEntry("work"),
		types.NewTagEntry("rust"),
	}

	require.NoError(t, store.SaveTags(types.ScopeProject, tags))

	loaded, err := store.LoadTags(types.ScopeProject)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "work", loaded[0].Name)

	// Global scope has its own registry.
	globalTags, err := store.LoadTags(types.ScopeGlobal)
	require.NoError(t, err)
	assert.Empty(t, globalTags)
}
