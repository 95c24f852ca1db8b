// Package storage implements the bucketed, content-addressed pad store.
//
// The layout per scope root:
//
//	<scope_root>/
//	  tags.json          scope-level tag registry (shared across buckets)
//	  active/
//	    data.json        index: map of pad id -> metadata
//	    pad-<uuid><ext>  canonical pad text
//	  archived/          same shape
//	  deleted/           same shape
//
// Every index, tag, and content write goes through a temp-file-plus-rename
// replace, and content is always written before the index that references
// it. Index entries without content read as empty and are healed by the
// reconciler; content files without index entries are recovered by it.
package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/types"
)

// ErrScopeUnavailable is returned when an operation targets the project
// scope but no project store could be resolved.
var ErrScopeUnavailable = errors.New("no project scope available (not in an initialized project?)")

// NotFoundError reports a pad id absent from the targeted bucket index.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pad %s not found", e.ID)
}

// IsNotFound reports whether err is a pad-not-found failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Backend is the low-level key/value surface a pad store runs on: an index
// map plus one content blob per pad, and the scope-level tag registry.
type Backend interface {
	LoadIndex(scope types.Scope) (map[uuid.UUID]types.Metadata, error)
	SaveIndex(scope types.Scope, index map[uuid.UUID]types.Metadata) error

	LoadTags(scope types.Scope) ([]types.TagEntry, error)
	SaveTags(scope types.Scope, tags []types.TagEntry) error

	// ReadContent returns the pad text; ok=false when no content file
	// exists for the id.
	ReadContent(scope types.Scope, id uuid.UUID) (string, bool, error)
	WriteContent(scope types.Scope, id uuid.UUID, content string) error
	DeleteContent(scope types.Scope, id uuid.UUID) error

	ListContentIDs(scope types.Scope) ([]uuid.UUID, error)
	ContentMtime(scope types.Scope, id uuid.UUID) (time.Time, bool, error)
	ContentPath(scope types.Scope, id uuid.UUID) (string, error)

	// Available reports whether the scope can be served at all (the
	// project scope may be absent).
	Available(scope types.Scope) bool
}

// DoctorReport summarizes what a reconciliation pass repaired.
type DoctorReport struct {
	FixedMissingFiles int
	RecoveredFiles    int
	FixedContentFiles int
}

// Add accumulates another report into this one.
func (r *DoctorReport) Add(other DoctorReport) {
	r.FixedMissingFiles += other.FixedMissingFiles
	r.RecoveredFiles += other.RecoveredFiles
	r.FixedContentFiles += other.FixedContentFiles
}

// Zero reports whether the pass repaired nothing.
func (r DoctorReport) Zero() bool {
	return r == DoctorReport{}
}

// DataStore is the bucket-aware store the command layer runs against.
type DataStore interface {
	SavePad(scope types.Scope, bucket types.Bucket, pad *types.Pad) error
	GetPad(scope types.Scope, bucket types.Bucket, id uuid.UUID) (*types.Pad, error)
	ListPads(scope types.Scope, bucket types.Bucket) ([]types.Pad, error)
	DeletePad(scope types.Scope, bucket types.Bucket, id uuid.UUID) error
	MovePad(scope types.Scope, from, to types.Bucket, id uuid.UUID) (*types.Pad, error)
	MovePads(scope types.Scope, from, to types.Bucket, ids []uuid.UUID) ([]types.Pad, error)
	PadPath(scope types.Scope, bucket types.Bucket, id uuid.UUID) (string, error)
	Sync(scope types.Scope) error
	Doctor(scope types.Scope) (DoctorReport, error)

	LoadTags(scope types.Scope) ([]types.TagEntry, error)
	SaveTags(scope types.Scope, tags []types.TagEntry) error
}
