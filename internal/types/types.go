// Package types defines the core domain types for padz: pads, metadata,
// scopes, buckets, todo statuses, and tag entries.
//
// Content normalization lives here too. Users dump text into pads in
// chaotic shapes (missing titles, leading blank lines, piped logs); the
// canonical form keeps lists and peeks rendering sanely without forcing a
// form on the user:
//
//	Title Line     <- first non-empty line
//	               <- single blank separator
//	Body Content   <- remaining text, trimmed
//
// A one-line pad is just its title, with no separator or trailing newline.
package types

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
)

// Scope identifies which of the two disjoint pad collections an operation
// targets.
type Scope string

const (
	ScopeProject Scope = "project"
	ScopeGlobal  Scope = "global"
)

// Bucket is the storage partition a pad occupies within a scope. A pad is in
// exactly one bucket at a time.
type Bucket string

const (
	BucketActive   Bucket = "active"
	BucketArchived Bucket = "archived"
	BucketDeleted  Bucket = "deleted"
)

// Buckets lists all buckets in reconciliation order.
var Buckets = []Bucket{BucketActive, BucketArchived, BucketDeleted}

// TodoStatus is the todo state of a pad.
type TodoStatus string

const (
	StatusPlanned    TodoStatus = "Planned"
	StatusInProgress TodoStatus = "InProgress"
	StatusDone       TodoStatus = "Done"
)

// ParseTodoStatus maps a status name to its TodoStatus value.
func ParseTodoStatus(s string) (TodoStatus, bool) {
	switch TodoStatus(s) {
	case StatusPlanned, StatusInProgress, StatusDone:
		return TodoStatus(s), true
	}
	return "", false
}

// MaxTitleWidth caps metadata titles at 60 display columns. Longer titles
// keep their first 59 columns and gain a trailing ellipsis.
const MaxTitleWidth = 60

var (
	nowMu   sync.Mutex
	lastNow time.Time
)

// NowUTC returns the current UTC time, strictly increasing within this
// process so that created_at ordering is a total order even under rapid
// successive creates.
func NowUTC() time.Time {
	nowMu.Lock()
	defer nowMu.Unlock()
	now := time.Now().UTC()
	if !now.After(lastNow) {
		now = lastNow.Add(time.Nanosecond)
	}
	lastNow = now
	return now
}

// Metadata is the per-pad record stored in a bucket's data.json.
type Metadata struct {
	ID              uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	IsPinned        bool
	PinnedAt        *time.Time
	IsDeleted       bool
	DeletedAt       *time.Time
	DeleteProtected bool
	ParentID        *uuid.UUID
	Title           string
	Status          TodoStatus
	Tags            []string
}

// metadataJSON is the wire shape. Deletion state is carried by the bucket in
// the current layout, so is_deleted/deleted_at are emitted only when set
// (and accepted when present, for legacy flat stores).
type metadataJSON struct {
	ID              uuid.UUID   `json:"id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	IsPinned        bool        `json:"is_pinned"`
	PinnedAt        *time.Time  `json:"pinned_at"`
	IsDeleted       bool        `json:"is_deleted,omitempty"`
	DeletedAt       *time.Time  `json:"deleted_at,omitempty"`
	DeleteProtected *bool       `json:"delete_protected,omitempty"`
	ParentID        *uuid.UUID  `json:"parent_id,omitempty"`
	Title           string      `json:"title"`
	Status          *TodoStatus `json:"status,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
}

// MarshalJSON writes the full current-format record. New writes always
// include delete_protected, parent_id, status, and tags.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type full struct {
		ID              uuid.UUID  `json:"id"`
		CreatedAt       time.Time  `json:"created_at"`
		UpdatedAt       time.Time  `json:"updated_at"`
		IsPinned        bool       `json:"is_pinned"`
		PinnedAt        *time.Time `json:"pinned_at"`
		IsDeleted       bool       `json:"is_deleted,omitempty"`
		DeletedAt       *time.Time `json:"deleted_at,omitempty"`
		DeleteProtected bool       `json:"delete_protected"`
		ParentID        *uuid.UUID `json:"parent_id"`
		Title           string     `json:"title"`
		Status          TodoStatus `json:"status"`
		Tags            []string   `json:"tags"`
	}
	status := m.Status
	if status == "" {
		status = StatusPlanned
	}
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(full{
		ID:              m.ID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		IsPinned:        m.IsPinned,
		PinnedAt:        m.PinnedAt,
		IsDeleted:       m.IsDeleted,
		DeletedAt:       m.DeletedAt,
		DeleteProtected: m.DeleteProtected,
		ParentID:        m.ParentID,
		Title:           m.Title,
		Status:          status,
		Tags:            tags,
	})
}

// UnmarshalJSON tolerates legacy records: a missing delete_protected
// defaults to is_pinned (so legacy pinned pads stay protected), a missing
// status defaults to Planned, missing tags to empty, missing parent_id to
// none.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var h metadataJSON
	if err := json.Unmarshal(data, &h); err != nil {
		return err
	}
	protected := h.IsPinned
	if h.DeleteProtected != nil {
		protected = *h.DeleteProtected
	}
	status := StatusPlanned
	if h.Status != nil && *h.Status != "" {
		status = *h.Status
	}
	tags := h.Tags
	if tags == nil {
		tags = []string{}
	}
	*m = Metadata{
		ID:              h.ID,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
		IsPinned:        h.IsPinned,
		PinnedAt:        h.PinnedAt,
		IsDeleted:       h.IsDeleted,
		DeletedAt:       h.DeletedAt,
		DeleteProtected: protected,
		ParentID:        h.ParentID,
		Title:           h.Title,
		Status:          status,
		Tags:            tags,
	}
	return nil
}

// NewMetadata builds a fresh record for a newly created pad.
func NewMetadata(title string) Metadata {
	now := NowUTC()
	return Metadata{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Status:    StatusPlanned,
		Title:     title,
		Tags:      []string{},
	}
}

// Pad is the atomic note entity: metadata plus content in canonical form.
type Pad struct {
	Metadata Metadata `json:"metadata"`
	Content  string   `json:"content"`
}

// NewPad normalizes the inputs and builds a pad with fresh metadata.
func NewPad(title, body string) Pad {
	displayTitle, content := NormalizePadContent(title, body)
	return Pad{
		Metadata: NewMetadata(displayTitle),
		Content:  content,
	}
}

// UpdateFromRaw replaces title and content from a raw string. Empty or
// whitespace-only input leaves the pad untouched.
func (p *Pad) UpdateFromRaw(raw string) {
	title, content, ok := ParsePadContent(raw)
	if !ok {
		return
	}
	p.Metadata.Title = title
	p.Content = content
	p.Metadata.UpdatedAt = NowUTC()
}

// NormalizePadContent produces the display title (truncated to 60 display
// columns) and the canonical full text. The content file keeps the full
// title line; only the metadata title is truncated.
func NormalizePadContent(title, body string) (string, string) {
	cleanTitle := strings.TrimSpace(title)

	displayTitle := cleanTitle
	if runewidth.StringWidth(cleanTitle) > MaxTitleWidth {
		displayTitle = runewidth.Truncate(cleanTitle, MaxTitleWidth, "…")
	}

	cleanBody := strings.TrimSpace(body)
	if cleanBody == "" {
		return displayTitle, cleanTitle
	}
	return displayTitle, cleanTitle + "\n\n" + cleanBody
}

// ExtractTitleAndBody splits raw text into a title (first non-empty line)
// and a trimmed body. Returns ok=false for empty input. Any number of blank
// lines between title and body collapses to the single canonical separator.
func ExtractTitleAndBody(raw string) (string, string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", false
	}
	title, rest, _ := strings.Cut(trimmed, "\n")
	return strings.TrimSpace(title), strings.TrimSpace(rest), true
}

// ParsePadContent composes extraction and normalization, yielding the
// truncated display title and the canonical content.
func ParsePadContent(raw string) (string, string, bool) {
	title, body, ok := ExtractTitleAndBody(raw)
	if !ok {
		return "", "", false
	}
	displayTitle, content := NormalizePadContent(title, body)
	return displayTitle, content, true
}

// SortTags sorts the pad's tag list in place. Adding tags re-sorts the list;
// a tag rename keeps the renamed tag in its slot.
func (m *Metadata) SortTags() {
	sort.Strings(m.Tags)
}

// HasTag reports whether the pad lists the tag.
func (m *Metadata) HasTag(name string) bool {
	for _, t := range m.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// TagEntry is one row of the scope-level tag registry.
type TagEntry struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTagEntry builds a registry entry stamped now.
func NewTagEntry(name string) TagEntry {
	return TagEntry{Name: name, CreatedAt: NowUTC()}
}
