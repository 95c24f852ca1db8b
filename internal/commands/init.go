package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/padz/internal/types"
)

// ScopePaths carries the resolved data directories for both scopes.
// Project is empty when no project store could be resolved.
type ScopePaths struct {
	Project string
	Global  string
}

// Dir returns the scope root for the given scope.
func (p ScopePaths) Dir(scope types.Scope) (string, error) {
	if scope == types.ScopeGlobal {
		return p.Global, nil
	}
	if p.Project == "" {
		return "", &ValidationError{Message: "Project scope is not available"}
	}
	return p.Project, nil
}

// Init creates the scope root with its three bucket directories.
func Init(paths ScopePaths, scope types.Scope) (*CmdResult, error) {
	dir, err := paths.Dir(scope)
	if err != nil {
		return nil, err
	}

	for _, bucket := range types.Buckets {
		if err := os.MkdirAll(filepath.Join(dir, string(bucket)), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s bucket: %w", bucket, err)
		}
	}

	result := &CmdResult{}
	result.AddMessage(Success("Initialized padz store at %s", dir))
	return result, nil
}

// Link writes an absolute project path into localPadz/link so subsequent
// invocations route through the target project's store. localPadz is the
// pre-resolution .padz directory (the CWD-based one, before any existing
// link is followed).
func Link(localPadz, target string) (*CmdResult, error) {
	resolved, err := filepath.Abs(target)
	if err == nil {
		if _, statErr := os.Stat(resolved); statErr != nil {
			err = statErr
		}
	}
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Target path '%s' does not exist or is not accessible", target)}
	}

	targetPadz := resolved
	if filepath.Base(resolved) != ".padz" {
		targetPadz = filepath.Join(resolved, ".padz")
	}

	if _, err := os.Stat(filepath.Join(targetPadz, string(types.BucketActive))); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Target '%s' has not been initialized. Run `padz init` there first.", targetPadz)}
	}

	if _, err := os.Stat(filepath.Join(targetPadz, "link")); err == nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Target '%s' is itself a link. Chained links are not supported.", targetPadz)}
	}

	if err := os.MkdirAll(localPadz, 0o755); err != nil {
		return nil, err
	}

	targetRoot := filepath.Dir(targetPadz)
	if err := os.WriteFile(filepath.Join(localPadz, "link"), []byte(targetRoot), 0o644); err != nil {
		return nil, err
	}

	result := &CmdResult{}
	result.AddMessage(Success("Linked to %s", targetPadz))
	return result, nil
}

// Unlink removes an existing link file.
func Unlink(localPadz string) (*CmdResult, error) {
	linkFile := filepath.Join(localPadz, "link")
	if _, err := os.Stat(linkFile); err != nil {
		return nil, &ValidationError{Message: "No link exists in this project."}
	}
	if err := os.Remove(linkFile); err != nil {
		return nil, err
	}
	result := &CmdResult{}
	result.AddMessage(Success("Unlinked."))
	return result, nil
}

// ReadLink returns the linked project root recorded in padzDir, if any.
func ReadLink(padzDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(padzDir, "link"))
	if err != nil {
		return "", false
	}
	target := strings.TrimSpace(string(data))
	if target == "" {
		return "", false
	}
	return target, true
}
