package storage

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/types"
)

// BucketedStore wraps three PadStores (active, archived, deleted), each over
// its own bucket subdirectory, plus a scope-root backend for tags.
type BucketedStore struct {
	active   *PadStore
	archived *PadStore
	deleted  *PadStore
	tags     Backend
}

// NewBucketedStore assembles a store from four backends.
func NewBucketedStore(active, archived, deleted, tags Backend) *BucketedStore {
	return &BucketedStore{
		active:   NewPadStore(active),
		archived: NewPadStore(archived),
		deleted:  NewPadStore(deleted),
		tags:     tags,
	}
}

// NewFSStore builds a filesystem-backed bucketed store over the given scope
// roots, using fileExt for new content files.
func NewFSStore(projectRoot, globalRoot, fileExt string) *BucketedStore {
	base := NewFSBackend(projectRoot, globalRoot).WithFileExt(fileExt)
	return NewBucketedStore(
		base.WithSubdir(string(types.BucketActive)),
		base.WithSubdir(string(types.BucketArchived)),
		base.WithSubdir(string(types.BucketDeleted)),
		base,
	)
}

// NewMemStore builds an in-memory bucketed store, one backend per bucket.
func NewMemStore() *BucketedStore {
	return NewBucketedStore(NewMemBackend(), NewMemBackend(), NewMemBackend(), NewMemBackend())
}

func (s *BucketedStore) store(bucket types.Bucket) *PadStore {
	switch bucket {
	case types.BucketArchived:
		return s.archived
	case types.BucketDeleted:
		return s.deleted
	default:
		return s.active
	}
}

// normalizeForBucket makes the in-memory deletion flags agree with the
// bucket the pad was loaded from. Migrated legacy records have the flags
// stripped, so the bucket is authoritative.
func normalizeForBucket(bucket types.Bucket, meta *types.Metadata) {
	if bucket == types.BucketDeleted {
		if !meta.IsDeleted {
			meta.IsDeleted = true
		}
		if meta.DeletedAt == nil {
			at := meta.UpdatedAt
			meta.DeletedAt = &at
		}
	}
}

func (s *BucketedStore) SavePad(scope types.Scope, bucket types.Bucket, pad *types.Pad) error {
	return s.store(bucket).SavePad(scope, pad)
}

func (s *BucketedStore) GetPad(scope types.Scope, bucket types.Bucket, id uuid.UUID) (*types.Pad, error) {
	pad, err := s.store(bucket).GetPad(scope, id)
	if err != nil {
		return nil, err
	}
	normalizeForBucket(bucket, &pad.Metadata)
	return pad, nil
}

func (s *BucketedStore) ListPads(scope types.Scope, bucket types.Bucket) ([]types.Pad, error) {
	pads, err := s.store(bucket).ListPads(scope)
	if err != nil {
		return nil, err
	}
	for i := range pads {
		normalizeForBucket(bucket, &pads[i].Metadata)
	}
	return pads, nil
}

func (s *BucketedStore) DeletePad(scope types.Scope, bucket types.Bucket, id uuid.UUID) error {
	return s.store(bucket).DeletePad(scope, id)
}

// MovePad relocates a pad between buckets: read source, write destination
// (content first), remove source. A crash between the last two steps leaves
// the pad duplicated; the next sync keeps the newer copy of a pad found in
// both the active and deleted buckets (see resolveDuplicates).
func (s *BucketedStore) MovePad(scope types.Scope, from, to types.Bucket, id uuid.UUID) (*types.Pad, error) {
	if from == to {
		return s.GetPad(scope, from, id)
	}

	pad, err := s.store(from).GetPad(scope, id)
	if err != nil {
		return nil, err
	}

	if err := s.store(to).SavePad(scope, pad); err != nil {
		return nil, err
	}
	if err := s.store(from).DeletePad(scope, id); err != nil {
		return nil, err
	}

	normalizeForBucket(to, &pad.Metadata)
	return pad, nil
}

// MovePads moves each id in turn; a failure leaves earlier moves committed.
func (s *BucketedStore) MovePads(scope types.Scope, from, to types.Bucket, ids []uuid.UUID) ([]types.Pad, error) {
	moved := make([]types.Pad, 0, len(ids))
	for _, id := range ids {
		pad, err := s.MovePad(scope, from, to, id)
		if err != nil {
			return moved, err
		}
		moved = append(moved, *pad)
	}
	return moved, nil
}

func (s *BucketedStore) PadPath(scope types.Scope, bucket types.Bucket, id uuid.UUID) (string, error) {
	return s.store(bucket).PadPath(scope, id)
}

// Sync reconciles all three buckets and cleans up interrupted moves.
func (s *BucketedStore) Sync(scope types.Scope) error {
	if err := s.active.Sync(scope); err != nil {
		return err
	}
	if err := s.archived.Sync(scope); err != nil {
		return err
	}
	if err := s.deleted.Sync(scope); err != nil {
		return err
	}
	return s.resolveDuplicates(scope)
}

// Doctor reconciles all three buckets and returns the summed report.
func (s *BucketedStore) Doctor(scope types.Scope) (DoctorReport, error) {
	var report DoctorReport
	for _, st := range []*PadStore{s.active, s.archived, s.deleted} {
		r, err := st.Doctor(scope)
		if err != nil {
			return report, err
		}
		report.Add(r)
	}
	if err := s.resolveDuplicates(scope); err != nil {
		return report, err
	}
	return report, nil
}

// resolveDuplicates removes the stale copy of any pad present in both the
// active and deleted buckets (the residue of a move interrupted between
// destination write and source removal). The destination copy of a move is
// always the newer one, so the newer copy survives.
func (s *BucketedStore) resolveDuplicates(scope types.Scope) error {
	if !s.active.backend.Available(scope) {
		return nil
	}
	activeIndex, err := s.active.backend.LoadIndex(scope)
	if err != nil {
		return err
	}
	deletedIndex, err := s.deleted.backend.LoadIndex(scope)
	if err != nil {
		return err
	}
	for id, activeMeta := range activeIndex {
		deletedMeta, dup := deletedIndex[id]
		if !dup {
			continue
		}
		if activeMeta.UpdatedAt.Before(deletedMeta.UpdatedAt) {
			if err := s.active.DeletePad(scope, id); err != nil {
				return err
			}
		} else {
			if err := s.deleted.DeletePad(scope, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *BucketedStore) LoadTags(scope types.Scope) ([]types.TagEntry, error) {
	return s.tags.LoadTags(scope)
}

func (s *BucketedStore) SaveTags(scope types.Scope, tags []types.TagEntry) error {
	return s.tags.SaveTags(scope, tags)
}
