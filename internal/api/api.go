// Package api is the thin facade every UI goes through. It parses user
// selectors, dispatches to the command layer, and returns structured
// results. No business logic lives here and nothing here touches stdout.
package api

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/padz/internal/commands"
	"github.com/arthur-debert/padz/internal/config"
	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// PadzAPI exposes every padz operation over a DataStore. All UI clients
// (CLI, tests, embedding programs) interact through this type.
type PadzAPI struct {
	store  storage.DataStore
	paths  commands.ScopePaths
	config config.Config
}

// New builds a facade over a store.
func New(store storage.DataStore, paths commands.ScopePaths, cfg config.Config) *PadzAPI {
	return &PadzAPI{store: store, paths: paths, config: cfg}
}

// Store exposes the underlying store for advanced embedders.
func (a *PadzAPI) Store() storage.DataStore {
	return a.store
}

// Paths returns the resolved scope directories.
func (a *PadzAPI) Paths() commands.ScopePaths {
	return a.paths
}

// Config returns the resolved configuration.
func (a *PadzAPI) Config() config.Config {
	return a.config
}

// CreatePad makes a new pad, optionally nested under a parent selector and
// tagged with registry names.
func (a *PadzAPI) CreatePad(scope types.Scope, title, content string, parent string, tagNames []string) (*commands.CmdResult, error) {
	var parentSel *index.Selector
	if parent != "" {
		sels, err := ParseSelectors([]string{parent})
		if err != nil {
			return nil, err
		}
		parentSel = &sels[0]
	}
	return commands.Create(a.store, scope, title, content, parentSel, tagNames)
}

// GetPads lists pads through the canonical indexer with a filter.
func (a *PadzAPI) GetPads(scope types.Scope, filter commands.PadFilter) (*commands.CmdResult, error) {
	return commands.Get(a.store, scope, filter)
}

// ViewPads returns the selected pads with content.
func (a *PadzAPI) ViewPads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.View(a.store, scope, selectors)
}

// UpdatePads applies a batch of updates.
func (a *PadzAPI) UpdatePads(scope types.Scope, updates []commands.PadUpdate) (*commands.CmdResult, error) {
	return commands.Update(a.store, scope, updates)
}

// UpdateFromContent applies raw piped content to the selected pads.
func (a *PadzAPI) UpdateFromContent(scope types.Scope, inputs []string, raw string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.UpdateFromContent(a.store, scope, selectors, raw)
}

// DeletePads soft-deletes the selected pads.
func (a *PadzAPI) DeletePads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Delete(a.store, scope, selectors)
}

// RestorePads brings deleted pads back. Bare numeric selectors address the
// deleted listing: "3" means "d3".
func (a *PadzAPI) RestorePads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectorsForDeleted(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Restore(a.store, scope, selectors)
}

// PinPads pins the selected pads.
func (a *PadzAPI) PinPads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Pin(a.store, scope, selectors)
}

// UnpinPads unpins the selected pads.
func (a *PadzAPI) UnpinPads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Unpin(a.store, scope, selectors)
}

// CompletePads marks the selected pads Done.
func (a *PadzAPI) CompletePads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Complete(a.store, scope, selectors)
}

// ReopenPads sets the selected pads back to Planned.
func (a *PadzAPI) ReopenPads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Reopen(a.store, scope, selectors)
}

// StartPads marks the selected pads InProgress.
func (a *PadzAPI) StartPads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Start(a.store, scope, selectors)
}

// MovePads reparents the selected pads under dest, or to the root when
// dest is empty.
func (a *PadzAPI) MovePads(scope types.Scope, inputs []string, dest string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	var destSel *index.Selector
	if dest != "" {
		destSels, err := ParseSelectors([]string{dest})
		if err != nil {
			return nil, err
		}
		destSel = &destSels[0]
	}
	return commands.Move(a.store, scope, selectors, destSel)
}

// AddTags adds registry tags to the selected pads.
func (a *PadzAPI) AddTags(scope types.Scope, inputs []string, tagNames []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.AddTags(a.store, scope, selectors, tagNames)
}

// RemoveTags removes tags from the selected pads.
func (a *PadzAPI) RemoveTags(scope types.Scope, inputs []string, tagNames []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.RemoveTags(a.store, scope, selectors, tagNames)
}

// ClearTags removes all tags from the selected pads.
func (a *PadzAPI) ClearTags(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.ClearTags(a.store, scope, selectors)
}

// TagList lists the scope's registry.
func (a *PadzAPI) TagList(scope types.Scope) (*commands.CmdResult, error) {
	return commands.ListTags(a.store, scope)
}

// TagCreate creates a registry entry.
func (a *PadzAPI) TagCreate(scope types.Scope, name string) (*commands.CmdResult, error) {
	return commands.CreateTag(a.store, scope, name)
}

// TagDelete removes a registry entry, cascading to pads.
func (a *PadzAPI) TagDelete(scope types.Scope, name string) (*commands.CmdResult, error) {
	return commands.DeleteTag(a.store, scope, name)
}

// TagRename renames a registry entry, updating pads in place.
func (a *PadzAPI) TagRename(scope types.Scope, oldName, newName string) (*commands.CmdResult, error) {
	return commands.RenameTag(a.store, scope, oldName, newName)
}

// PurgePads permanently removes pads. Bare numeric selectors address the
// deleted listing, as with restore.
func (a *PadzAPI) PurgePads(scope types.Scope, inputs []string, recursive, confirmed, includeDone bool) (*commands.CmdResult, error) {
	selectors, err := ParseSelectorsForDeleted(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Purge(a.store, scope, selectors, recursive, confirmed, includeDone)
}

// ExportPads resolves selectors for export.
func (a *PadzAPI) ExportPads(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Export(a.store, scope, selectors)
}

// ImportPads creates pads from files and directories.
func (a *PadzAPI) ImportPads(scope types.Scope, paths []string) (*commands.CmdResult, error) {
	return commands.Import(a.store, scope, paths, a.config.ImportExtensions)
}

// Doctor reconciles all buckets and reports repairs.
func (a *PadzAPI) Doctor(scope types.Scope) (*commands.CmdResult, error) {
	return commands.Doctor(a.store, scope)
}

// PadPaths returns content-file paths for the selected pads.
func (a *PadzAPI) PadPaths(scope types.Scope, inputs []string) (*commands.CmdResult, error) {
	selectors, err := ParseSelectors(inputs)
	if err != nil {
		return nil, err
	}
	return commands.Paths(a.store, scope, selectors)
}

// PadPathByID returns the content-file path for a known id.
func (a *PadzAPI) PadPathByID(scope types.Scope, bucket types.Bucket, id uuid.UUID) (string, error) {
	return a.store.PadPath(scope, bucket, id)
}

// Init creates the scope's bucket directories.
func (a *PadzAPI) Init(scope types.Scope) (*commands.CmdResult, error) {
	return commands.Init(a.paths, scope)
}

// Configure shows or mutates padz.toml.
func (a *PadzAPI) Configure(scope types.Scope, action commands.ConfigAction) (*commands.CmdResult, error) {
	return commands.Config(a.paths, scope, a.config, action)
}

// ParseSelectors parses a batch of user inputs into selectors.
//
// Every input must parse as a path or range; if any single input fails, the
// whole batch's tokens are joined with spaces into one title query. The
// exception is an explicit range-validation failure ("Invalid range",
// "cannot mix"), which propagates instead of degrading to a search.
func ParseSelectors(inputs []string) ([]index.Selector, error) {
	selectors := make([]index.Selector, 0, len(inputs))
	for _, input := range inputs {
		sel, err := index.ParseSelector(input)
		if err != nil {
			if strings.Contains(err.Error(), "Invalid range") || strings.Contains(err.Error(), "cannot mix") {
				return nil, err
			}
			term := strings.Join(inputs, " ")
			return []index.Selector{index.TitleSelector(term)}, nil
		}
		selectors = append(selectors, sel)
	}
	return selectors, nil
}

// ParseSelectorsForDeleted parses selectors for operations on the deleted
// listing. Bare numbers (and bare-number range endpoints) are rewritten
// with a d prefix first: "3" -> "d3", "1-3" -> "d1-d3".
func ParseSelectorsForDeleted(inputs []string) ([]index.Selector, error) {
	normalized := make([]string, len(inputs))
	for i, input := range inputs {
		normalized[i] = normalizeToDeleted(input)
	}
	return ParseSelectors(normalized)
}

func normalizeToDeleted(s string) string {
	if dash := strings.Index(s, "-"); dash > 0 {
		return normalizeSegmentPath(s[:dash]) + "-" + normalizeSegmentPath(s[dash+1:])
	}
	return normalizeSegmentPath(s)
}

// normalizeSegmentPath rewrites each dot segment of a path.
func normalizeSegmentPath(s string) string {
	parts := strings.Split(s, ".")
	for i, part := range parts {
		parts[i] = normalizeSegment(part)
	}
	return strings.Join(parts, ".")
}

func normalizeSegment(s string) string {
	if s == "" {
		return s
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return s
		}
	}
	return "d" + s
}
