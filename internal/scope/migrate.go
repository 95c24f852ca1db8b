package scope

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arthur-debert/padz/internal/types"
)

// MigrateIfNeeded upgrades a legacy flat scope root to the bucketed layout.
//
// Legacy layout kept a single data.json at the root with an is_deleted flag
// per entry and all pad files alongside it. The bucketed layout partitions
// into active/, archived/, and deleted/ subdirectories, with the bucket
// carrying deletion state.
//
// Detection: data.json exists at the root and active/ does not. Migration
// is best-effort — a failure logs a warning and leaves the store untouched
// so the next invocation can retry.
func MigrateIfNeeded(scopeRoot string, logger *zap.Logger) {
	legacyData := filepath.Join(scopeRoot, "data.json")
	activeDir := filepath.Join(scopeRoot, string(types.BucketActive))

	if !fileExists(legacyData) || dirExists(activeDir) {
		return
	}

	if err := migrateFlatToBucketed(scopeRoot); err != nil {
		logger.Warn("migration of legacy store failed",
			zap.String("root", scopeRoot),
			zap.Error(err))
	}
}

func migrateFlatToBucketed(scopeRoot string) error {
	legacyPath := filepath.Join(scopeRoot, "data.json")
	raw, err := os.ReadFile(legacyPath)
	if err != nil {
		return err
	}

	// Entries stay raw JSON so unknown legacy fields survive untouched;
	// only is_deleted/deleted_at are stripped.
	var entries map[uuid.UUID]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parsing legacy data.json: %w", err)
	}

	active := map[uuid.UUID]map[string]json.RawMessage{}
	deleted := map[uuid.UUID]map[string]json.RawMessage{}

	for id, entry := range entries {
		isDeleted := false
		if flag, ok := entry["is_deleted"]; ok {
			_ = json.Unmarshal(flag, &isDeleted)
		}
		delete(entry, "is_deleted")
		delete(entry, "deleted_at")

		if isDeleted {
			deleted[id] = entry
		} else {
			active[id] = entry
		}
	}

	activeDir := filepath.Join(scopeRoot, string(types.BucketActive))
	archivedDir := filepath.Join(scopeRoot, string(types.BucketArchived))
	deletedDir := filepath.Join(scopeRoot, string(types.BucketDeleted))
	for _, dir := range []string{activeDir, archivedDir, deletedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if err := writeIndexJSON(filepath.Join(activeDir, "data.json"), active); err != nil {
		return err
	}
	if err := writeIndexJSON(filepath.Join(deletedDir, "data.json"), deleted); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(archivedDir, "data.json"), []byte("{}"), 0o644); err != nil {
		return err
	}

	// Relocate content files by partition; orphans default to active where
	// the reconciler will adopt them.
	dirEntries, err := os.ReadDir(scopeRoot)
	if err != nil {
		return err
	}
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "pad-") {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		id, err := uuid.Parse(strings.TrimPrefix(stem, "pad-"))
		if err != nil {
			continue
		}

		destDir := activeDir
		if _, ok := deleted[id]; ok {
			destDir = deletedDir
		}
		if err := os.Rename(filepath.Join(scopeRoot, name), filepath.Join(destDir, name)); err != nil {
			return err
		}
	}

	// tags.json stays at the scope root; only the legacy index goes.
	return os.Remove(legacyPath)
}

func writeIndexJSON(path string, entries map[uuid.UUID]map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
