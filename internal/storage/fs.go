package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/types"
)

// DefaultFileExt is the content-file extension used when no configuration
// overrides it. Readers always accept .txt as a legacy fallback.
const DefaultFileExt = ".txt"

const (
	indexFileName = "data.json"
	tagsFileName  = "tags.json"
)

// FSBackend stores one bucket (or, with an empty subdir, the scope root for
// tags) on the filesystem. It holds both scope roots and picks one per call.
type FSBackend struct {
	projectRoot string // empty when no project store is available
	globalRoot  string
	subdir      string
	fileExt     string
}

// NewFSBackend builds a backend over the given scope roots. projectRoot may
// be empty when the project scope is unavailable.
func NewFSBackend(projectRoot, globalRoot string) *FSBackend {
	return &FSBackend{
		projectRoot: projectRoot,
		globalRoot:  globalRoot,
		fileExt:     DefaultFileExt,
	}
}

// WithSubdir returns a copy of the backend rooted at a bucket subdirectory.
func (b *FSBackend) WithSubdir(sub string) *FSBackend {
	clone := *b
	clone.subdir = sub
	return &clone
}

// WithFileExt returns a copy using the given content extension, normalized
// to start with a dot.
func (b *FSBackend) WithFileExt(ext string) *FSBackend {
	clone := *b
	if strings.HasPrefix(ext, ".") {
		clone.fileExt = ext
	} else {
		clone.fileExt = "." + ext
	}
	return &clone
}

// FileExt returns the configured content extension.
func (b *FSBackend) FileExt() string {
	return b.fileExt
}

func (b *FSBackend) root(scope types.Scope) (string, error) {
	var base string
	switch scope {
	case types.ScopeProject:
		if b.projectRoot == "" {
			return "", ErrScopeUnavailable
		}
		base = b.projectRoot
	case types.ScopeGlobal:
		base = b.globalRoot
	default:
		return "", fmt.Errorf("unknown scope %q", scope)
	}
	if b.subdir == "" {
		return base, nil
	}
	return filepath.Join(base, b.subdir), nil
}

func (b *FSBackend) padFileName(id uuid.UUID) string {
	return "pad-" + id.String() + b.fileExt
}

// findPadFile locates the content file for an id, preferring the configured
// extension and falling back to .txt for stores written before an extension
// change.
func (b *FSBackend) findPadFile(root string, id uuid.UUID) (string, bool) {
	path := filepath.Join(root, b.padFileName(id))
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	if b.fileExt != DefaultFileExt {
		txtPath := filepath.Join(root, "pad-"+id.String()+DefaultFileExt)
		if _, err := os.Stat(txtPath); err == nil {
			return txtPath, true
		}
	}
	return "", false
}

// replaceFile writes data to a sibling .<prefix>-<uuid>.tmp and renames it
// over the target. The rename is retried briefly; some platforms fail it
// transiently while a reader holds the target open.
func replaceFile(target, prefix string, data []byte) error {
	dir := filepath.Dir(target)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s-%s.tmp", prefix, uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxElapsedTime = time.Second
	err := backoff.Retry(func() error {
		return os.Rename(tmp, target)
	}, bo)
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}

func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (b *FSBackend) LoadIndex(scope types.Scope) (map[uuid.UUID]types.Metadata, error) {
	root, err := b.root(scope)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(root, indexFileName))
	if os.IsNotExist(err) {
		return map[uuid.UUID]types.Metadata{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	index := map[uuid.UUID]types.Metadata{}
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	return index, nil
}

func (b *FSBackend) SaveIndex(scope types.Scope, index map[uuid.UUID]types.Metadata) error {
	root, err := b.root(scope)
	if err != nil {
		return err
	}
	if err := ensureDir(root); err != nil {
		return err
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}
	return replaceFile(filepath.Join(root, indexFileName), "data", data)
}

func (b *FSBackend) LoadTags(scope types.Scope) ([]types.TagEntry, error) {
	root, err := b.root(scope)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(root, tagsFileName))
	if os.IsNotExist(err) {
		return []types.TagEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading tags: %w", err)
	}
	var tags []types.TagEntry
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("parsing tags: %w", err)
	}
	return tags, nil
}

func (b *FSBackend) SaveTags(scope types.Scope, tags []types.TagEntry) error {
	root, err := b.root(scope)
	if err != nil {
		return err
	}
	if err := ensureDir(root); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}
	return replaceFile(filepath.Join(root, tagsFileName), "tags", data)
}

func (b *FSBackend) ReadContent(scope types.Scope, id uuid.UUID) (string, bool, error) {
	root, err := b.root(scope)
	if err != nil {
		return "", false, err
	}
	path, ok := b.findPadFile(root, id)
	if !ok {
		return "", false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading pad content: %w", err)
	}
	return string(data), true, nil
}

func (b *FSBackend) WriteContent(scope types.Scope, id uuid.UUID, content string) error {
	root, err := b.root(scope)
	if err != nil {
		return err
	}
	if err := ensureDir(root); err != nil {
		return err
	}
	return replaceFile(filepath.Join(root, b.padFileName(id)), "pad", []byte(content))
}

func (b *FSBackend) DeleteContent(scope types.Scope, id uuid.UUID) error {
	root, err := b.root(scope)
	if err != nil {
		return err
	}
	if path, ok := b.findPadFile(root, id); ok {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing pad content: %w", err)
		}
	}
	return nil
}

func (b *FSBackend) ListContentIDs(scope types.Scope) ([]uuid.UUID, error) {
	root, err := b.root(scope)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing bucket: %w", err)
	}

	var ids []uuid.UUID
	for _, entry := range entries {
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
		ids = append(ids, id)
	}
	return ids, nil
}

func (b *FSBackend) ContentMtime(scope types.Scope, id uuid.UUID) (time.Time, bool, error) {
	root, err := b.root(scope)
	if err != nil {
		return time.Time{}, false, err
	}
	path, ok := b.findPadFile(root, id)
	if !ok {
		return time.Time{}, false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("stat pad content: %w", err)
	}
	return info.ModTime().UTC(), true, nil
}

func (b *FSBackend) ContentPath(scope types.Scope, id uuid.UUID) (string, error) {
	root, err := b.root(scope)
	if err != nil {
		return "", err
	}
	if path, ok := b.findPadFile(root, id); ok {
		return path, nil
	}
	return filepath.Join(root, b.padFileName(id)), nil
}

func (b *FSBackend) Available(scope types.Scope) bool {
	_, err := b.root(scope)
	return err == nil
}
