package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/types"
)

// MemBackend is an in-memory Backend used by tests and any caller that
// wants store semantics without a filesystem.
type MemBackend struct {
	scopes map[types.Scope]*memScope
}

type memScope struct {
	index   map[uuid.UUID]types.Metadata
	tags    []types.TagEntry
	content map[uuid.UUID]string
	mtimes  map[uuid.UUID]time.Time
}

// NewMemBackend builds an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{scopes: map[types.Scope]*memScope{}}
}

func (b *MemBackend) scope(scope types.Scope) *memScope {
	s, ok := b.scopes[scope]
	if !ok {
		s = &memScope{
			index:   map[uuid.UUID]types.Metadata{},
			content: map[uuid.UUID]string{},
			mtimes:  map[uuid.UUID]time.Time{},
		}
		b.scopes[scope] = s
	}
	return s
}

func (b *MemBackend) LoadIndex(scope types.Scope) (map[uuid.UUID]types.Metadata, error) {
	s := b.scope(scope)
	out := make(map[uuid.UUID]types.Metadata, len(s.index))
	for id, meta := range s.index {
		out[id] = meta
	}
	return out, nil
}

func (b *MemBackend) SaveIndex(scope types.Scope, index map[uuid.UUID]types.Metadata) error {
	s := b.scope(scope)
	s.index = make(map[uuid.UUID]types.Metadata, len(index))
	for id, meta := range index {
		s.index[id] = meta
	}
	return nil
}

func (b *MemBackend) LoadTags(scope types.Scope) ([]types.TagEntry, error) {
	return append([]types.TagEntry(nil), b.scope(scope).tags...), nil
}

func (b *MemBackend) SaveTags(scope types.Scope, tagList []types.TagEntry) error {
	b.scope(scope).tags = append([]types.TagEntry(nil), tagList...)
	return nil
}

func (b *MemBackend) ReadContent(scope types.Scope, id uuid.UUID) (string, bool, error) {
	content, ok := b.scope(scope).content[id]
	return content, ok, nil
}

func (b *MemBackend) WriteContent(scope types.Scope, id uuid.UUID, content string) error {
	s := b.scope(scope)
	s.content[id] = content
	s.mtimes[id] = types.NowUTC()
	return nil
}

func (b *MemBackend) DeleteContent(scope types.Scope, id uuid.UUID) error {
	s := b.scope(scope)
	delete(s.content, id)
	delete(s.mtimes, id)
	return nil
}

func (b *MemBackend) ListContentIDs(scope types.Scope) ([]uuid.UUID, error) {
	s := b.scope(scope)
	ids := make([]uuid.UUID, 0, len(s.content))
	for id := range s.content {
		ids = append(ids, id)
	}
	return ids, nil
}

func (b *MemBackend) ContentMtime(scope types.Scope, id uuid.UUID) (time.Time, bool, error) {
	mtime, ok := b.scope(scope).mtimes[id]
	return mtime, ok, nil
}

func (b *MemBackend) ContentPath(scope types.Scope, id uuid.UUID) (string, error) {
	return "mem://pad-" + id.String(), nil
}

func (b *MemBackend) Available(types.Scope) bool {
	return true
}
