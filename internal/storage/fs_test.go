package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/padz/internal/types"
)

func fsStore(t *testing.T) (*BucketedStore, string) {
	t.Helper()
	root := t.TempDir()
	return NewFSStore(root, filepath.Join(root, "global"), DefaultFileExt), root
}

func TestFSSaveWritesContentAndIndex(t *testing.T) {
	store, root := fsStore(t)
	pad := types.NewPad("Saved", "Body")

	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	activeDir := filepath.Join(root, "active")
	contentPath := filepath.Join(activeDir, "pad-"+pad.Metadata.ID.String()+".txt")
	data, err := os.ReadFile(contentPath)
	require.NoError(t, err)
	assert.Equal(t, "Saved\n\nBody", string(data))

	_, err = os.Stat(filepath.Join(activeDir, "data.json"))
	require.NoError(t, err)
}

func TestFSAtomicWritesLeaveNoTempFiles(t *testing.T) {
	store, root := fsStore(t)

	for i := 0; i < 5; i++ {
		pad := types.NewPad("Pad", "Body")
		require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))
	}
	require.NoError(t, store.SaveTags(types.ScopeProject, []types.TagEntry{types.NewTagEntry("work")}))

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		assert.False(t, strings.HasSuffix(d.Name(), ".tmp"), "leftover temp file %s", path)
		return nil
	})
	require.NoError(t, err)
}

func TestFSDoctorFixesMissingContent(t *testing.T) {
	store, root := fsStore(t)
	pad := types.NewPad("Lost", "Content")
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	contentPath := filepath.Join(root, "active", "pad-"+pad.Metadata.ID.String()+".txt")
	require.NoError(t, os.Remove(contentPath))

	report, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)
	assert.Equal(t, 1, report.FixedMissingFiles)

	pads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	assert.Empty(t, pads)
}

func TestFSDoctorRecoversOrphanFiles(t *testing.T) {
	store, root := fsStore(t)
	activeDir := filepath.Join(root, "active")
	require.NoError(t, os.MkdirAll(activeDir, 0o755))

	id := uuid.New()
	require.NoError(t, os.WriteFile(
		filepath.Join(activeDir, "pad-"+id.String()+".txt"),
		[]byte("Orphan Title\nOrphan Content"), 0o644))

	report, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RecoveredFiles)
	// The orphan was not in canonical form; recovery rewrites it.
	assert.Equal(t, 1, report.FixedContentFiles)

	data, err := os.ReadFile(filepath.Join(activeDir, "pad-"+id.String()+".txt"))
	require.NoError(t, err)
	assert.Equal(t, "Orphan Title\n\nOrphan Content", string(data))

	pads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	require.Len(t, pads, 1)
	assert.Equal(t, "Orphan Title", pads[0].Metadata.Title)
	assert.Equal(t, id, pads[0].Metadata.ID)
	assert.Equal(t, types.StatusPlanned, pads[0].Metadata.Status)
	assert.False(t, pads[0].Metadata.IsPinned)
}

func TestFSDoctorDeletesEmptyFiles(t *testing.T) {
	store, root := fsStore(t)
	activeDir := filepath.Join(root, "active")
	require.NoError(t, os.MkdirAll(activeDir, 0o755))

	id := uuid.New()
	emptyPath := filepath.Join(activeDir, "pad-"+id.String()+".txt")
	require.NoError(t, os.WriteFile(emptyPath, []byte("   \n   "), 0o644))

	_, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)

	_, err = os.Stat(emptyPath)
	assert.True(t, os.IsNotExist(err))
}

func TestFSDoctorIdempotent(t *testing.T) {
	store, root := fsStore(t)
	pad := types.NewPad("Healthy", "Body")
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	// First pass may absorb the content file's mtime into the index.
	_, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)

	indexPath := filepath.Join(root, "active", "data.json")
	before, err := os.ReadFile(indexPath)
	require.NoError(t, err)

	report, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)
	assert.True(t, report.Zero())

	after, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "doctor on a healthy store must not mutate the index")
}

func TestFSExternalEditVisibleAfterList(t *testing.T) {
	store, root := fsStore(t)
	pad := types.NewPad("Original", "Body")
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	// Settle the index to the file mtime.
	_, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)

	// An external editor rewrites the content file.
	contentPath := filepath.Join(root, "active", "pad-"+pad.Metadata.ID.String()+".txt")
	require.NoError(t, os.WriteFile(contentPath, []byte("Edited Title\n\nEdited Body"), 0o644))
	future := types.NowUTC().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(contentPath, future, future))

	pads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	require.Len(t, pads, 1)
	assert.Equal(t, "Edited Title", pads[0].Metadata.Title)
}

func TestFSLegacyTxtFallback(t *testing.T) {
	root := t.TempDir()
	store := NewFSStore(root, filepath.Join(root, "global"), ".md")

	// A pad written under the old default extension.
	activeDir := filepath.Join(root, "active")
	require.NoError(t, os.MkdirAll(activeDir, 0o755))
	id := uuid.New()
	require.NoError(t, os.WriteFile(
		filepath.Join(activeDir, "pad-"+id.String()+".txt"),
		[]byte("Old Pad\n\nStill readable"), 0o644))

	report, err := store.Doctor(types.ScopeProject)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RecoveredFiles)

	pad, err := store.GetPad(types.ScopeProject, types.BucketActive, id)
	require.NoError(t, err)
	assert.Equal(t, "Old Pad\n\nStill readable", pad.Content)

	// New writes use the configured extension.
	fresh := types.NewPad("Fresh", "")
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &fresh))
	_, err = os.Stat(filepath.Join(activeDir, "pad-"+fresh.Metadata.ID.String()+".md"))
	assert.NoError(t, err)
}

func TestFSMissingContentReadsEmpty(t *testing.T) {
	store, root := fsStore(t)
	pad := types.NewPad("Ghost", "Body")
	require.NoError(t, store.SavePad(types.ScopeProject, types.BucketActive, &pad))

	contentPath := filepath.Join(root, "active", "pad-"+pad.Metadata.ID.String()+".txt")
	require.NoError(t, os.Remove(contentPath))

	// GetPad tolerates the gap; the next reconcile heals it.
	got, err := store.GetPad(types.ScopeProject, types.BucketActive, pad.Metadata.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Content)
}

func TestFSProjectScopeUnavailable(t *testing.T) {
	root := t.TempDir()
	store := NewFSStore("", filepath.Join(root, "global"), DefaultFileExt)

	_, err := store.ListPads(types.ScopeProject, types.BucketActive)
	assert.ErrorIs(t, err, ErrScopeUnavailable)

	// Global still works.
	pad := types.NewPad("Global", "")
	require.NoError(t, store.SavePad(types.ScopeGlobal, types.BucketActive, &pad))
	pads, err := store.ListPads(types.ScopeGlobal, types.BucketActive)
	require.NoError(t, err)
	assert.Len(t, pads, 1)
}

func TestFSTmpFilesNotListedAsContent(t *testing.T) {
	store, root := fsStore(t)
	activeDir := filepath.Join(root, "active")
	require.NoError(t, os.MkdirAll(activeDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(activeDir, ".pad-"+uuid.NewString()+".tmp"),
		[]byte("half staged"), 0o644))

	pads, err := store.ListPads(types.ScopeProject, types.BucketActive)
	require.NoError(t, err)
	assert.Empty(t, pads)
}
