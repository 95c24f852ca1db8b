// Package padz provides a minimal public API for embedding padz in other
// Go programs.
//
// Most tooling should shell out to the padz CLI; this package exports only
// the essential types and constructors for programs that want to use the
// store and facade directly.
package padz

import (
	"os"

	"github.com/arthur-debert/padz/internal/api"
	"github.com/arthur-debert/padz/internal/commands"
	"github.com/arthur-debert/padz/internal/config"
	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/scope"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// Core domain types.
type (
	// Pad is the atomic note entity: metadata plus content.
	Pad = types.Pad
	// Metadata is the per-pad record stored in a bucket index.
	Metadata = types.Metadata
	// Scope selects the project or global collection.
	Scope = types.Scope
	// Bucket is the storage partition a pad occupies.
	Bucket = types.Bucket
	// TodoStatus is a pad's todo state.
	TodoStatus = types.TodoStatus
	// TagEntry is one row of the scope-level tag registry.
	TagEntry = types.TagEntry
	// DisplayPad pairs a pad with its canonical display index.
	DisplayPad = index.DisplayPad
	// DisplayIndex is the user-facing index (1, p1, d1).
	DisplayIndex = index.DisplayIndex
	// CmdResult is the structured result of every operation.
	CmdResult = commands.CmdResult
	// CmdMessage is one leveled user-visible message.
	CmdMessage = commands.CmdMessage
	// PadFilter filters listings.
	PadFilter = commands.PadFilter
	// Config is the resolved padz.toml configuration.
	Config = config.Config
	// API is the operation facade shared by every UI.
	API = api.PadzAPI
)

// Scope constants.
const (
	ScopeProject = types.ScopeProject
	ScopeGlobal  = types.ScopeGlobal
)

// Bucket constants.
const (
	BucketActive   = types.BucketActive
	BucketArchived = types.BucketArchived
	BucketDeleted  = types.BucketDeleted
)

// TodoStatus constants.
const (
	StatusPlanned    = types.StatusPlanned
	StatusInProgress = types.StatusInProgress
	StatusDone       = types.StatusDone
)

// Open resolves scopes from the working directory (honoring PADZ_GLOBAL_DATA
// and link files), loads configuration, and returns the facade.
func Open() (*API, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return OpenAt(cwd, "")
}

// OpenAt is Open with an explicit working directory and optional project
// data override.
func OpenAt(cwd, dataOverride string) (*API, error) {
	paths := scope.Resolve(cwd, dataOverride)

	cfg, err := config.Load(paths.Global, paths.Project, types.ScopeProject)
	if err != nil {
		return nil, err
	}

	store := storage.NewFSStore(paths.Project, paths.Global, cfg.FileExt)
	return api.New(store, commands.ScopePaths{
		Project: paths.Project,
		Global:  paths.Global,
	}, cfg), nil
}

// FindProjectRoot walks upward from cwd looking for a directory carrying
// both .git and .padz markers.
func FindProjectRoot(cwd string) (string, bool) {
	return scope.FindProjectRoot(cwd)
}
