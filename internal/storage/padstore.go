package storage

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/types"
)

// PadStore manages a single bucket over a Backend. Listing reconciles
// first, so external edits to content files become visible on the next
// read.
type PadStore struct {
	backend Backend
}

// NewPadStore wraps a backend.
func NewPadStore(backend Backend) *PadStore {
	return &PadStore{backend: backend}
}

// Backend exposes the underlying backend.
func (s *PadStore) Backend() Backend {
	return s.backend
}

// Sync runs a reconciliation pass, discarding the report.
func (s *PadStore) Sync(scope types.Scope) error {
	_, err := s.reconcile(scope)
	return err
}

// Doctor runs a reconciliation pass and returns what it repaired.
func (s *PadStore) Doctor(scope types.Scope) (DoctorReport, error) {
	return s.reconcile(scope)
}

// reconcile repairs the index-content relationship:
//
//  1. Content files newer than their index entry (or absent from it) are
//     re-read. Empty files are deleted along with any index entry. Orphans
//     gain a fresh metadata record stamped with the file mtime and, when the
//     on-disk bytes differ from the canonical form, are rewritten.
//  2. Index entries whose content file is gone are dropped.
//
// The pass is idempotent and never raises from its self-healing branches;
// only enumerating the bucket or writing the updated index can fail.
func (s *PadStore) reconcile(scope types.Scope) (DoctorReport, error) {
	var report DoctorReport
	if !s.backend.Available(scope) {
		return report, nil
	}

	index, err := s.backend.LoadIndex(scope)
	if err != nil {
		return report, err
	}
	foundIDs, err := s.backend.ListContentIDs(scope)
	if err != nil {
		return report, err
	}

	changed := false
	found := make(map[uuid.UUID]bool, len(foundIDs))

	for _, id := range foundIDs {
		found[id] = true

		mtime, ok, err := s.backend.ContentMtime(scope, id)
		if err != nil || !ok {
			mtime = types.NowUTC()
		}

		meta, inIndex := index[id]
		if inIndex && !mtime.After(meta.UpdatedAt) {
			continue
		}

		raw, _, err := s.backend.ReadContent(scope, id)
		if err != nil {
			raw = ""
		}

		if strings.TrimSpace(raw) == "" {
			// Nothing worth keeping; drop file and entry.
			_ = s.backend.DeleteContent(scope, id)
			if inIndex {
				delete(index, id)
				changed = true
			}
			continue
		}

		title, canonical, ok := types.ParsePadContent(raw)
		if !ok {
			continue
		}

		if inIndex {
			if meta.Title != title || !meta.UpdatedAt.Equal(mtime) {
				meta.Title = title
				meta.UpdatedAt = mtime
				index[id] = meta
				changed = true
			}
			continue
		}

		// Orphan file: adopt it with a fresh record.
		newMeta := types.Metadata{
			ID:        id,
			CreatedAt: mtime,
			UpdatedAt: mtime,
			Title:     title,
			Status:    types.StatusPlanned,
			Tags:      []string{},
		}
		index[id] = newMeta
		report.RecoveredFiles++
		changed = true

		if raw != canonical {
			if err := s.backend.WriteContent(scope, id, canonical); err == nil {
				report.FixedContentFiles++
			}
		}
	}

	for id := range index {
		if !found[id] {
			delete(index, id)
			report.FixedMissingFiles++
			changed = true
		}
	}

	if changed {
		if err := s.backend.SaveIndex(scope, index); err != nil {
			return report, err
		}
	}

	return report, nil
}

// SavePad writes the pad's content, then its index entry. Content first, so
// a crash between the two leaves an orphan file (recovered) rather than a
// dangling index reference.
func (s *PadStore) SavePad(scope types.Scope, pad *types.Pad) error {
	if err := s.backend.WriteContent(scope, pad.Metadata.ID, pad.Content); err != nil {
		return err
	}
	index, err := s.backend.LoadIndex(scope)
	if err != nil {
		return err
	}
	index[pad.Metadata.ID] = pad.Metadata
	return s.backend.SaveIndex(scope, index)
}

// GetPad loads a pad by id. Missing content reads as empty; the next
// reconciliation pass heals the record.
func (s *PadStore) GetPad(scope types.Scope, id uuid.UUID) (*types.Pad, error) {
	index, err := s.backend.LoadIndex(scope)
	if err != nil {
		return nil, err
	}
	meta, ok := index[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	content, _, err := s.backend.ReadContent(scope, id)
	if err != nil {
		return nil, err
	}
	return &types.Pad{Metadata: meta, Content: content}, nil
}

// ListPads reconciles and returns every pad in the bucket.
func (s *PadStore) ListPads(scope types.Scope) ([]types.Pad, error) {
	_ = s.Sync(scope)

	index, err := s.backend.LoadIndex(scope)
	if err != nil {
		return nil, err
	}
	pads := make([]types.Pad, 0, len(index))
	for id, meta := range index {
		content, _, err := s.backend.ReadContent(scope, id)
		if err != nil {
			content = ""
		}
		pads = append(pads, types.Pad{Metadata: meta, Content: content})
	}
	return pads, nil
}

// DeletePad removes the index entry first, then the content file. A crash
// between the two leaves an orphan, which the reconciler recovers rather
// than losing data behind a dangling reference.
func (s *PadStore) DeletePad(scope types.Scope, id uuid.UUID) error {
	index, err := s.backend.LoadIndex(scope)
	if err != nil {
		return err
	}
	if _, ok := index[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(index, id)
	if err := s.backend.SaveIndex(scope, index); err != nil {
		return err
	}
	return s.backend.DeleteContent(scope, id)
}

// PadPath returns the content file path for external tools.
func (s *PadStore) PadPath(scope types.Scope, id uuid.UUID) (string, error) {
	return s.backend.ContentPath(scope, id)
}
