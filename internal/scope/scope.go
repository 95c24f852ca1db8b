// Package scope resolves where pad data lives: the per-project store found
// by walking up from the working directory, and the per-user global store.
//
// Project detection is deliberate about requiring BOTH markers. A directory
// qualifies only when it has .git AND .padz: checking .git alone would let a
// monorepo parent capture a nested repo's notes, and .padz alone would let
// any stray ancestor directory be adopted. `padz init` is the explicit
// opt-in that creates the .padz marker.
package scope

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arthur-debert/padz/internal/types"
)

// MarkerDir is the per-project store directory name.
const MarkerDir = ".padz"

// vcsMarker gates project detection alongside MarkerDir.
const vcsMarker = ".git"

// GlobalDataEnv overrides the global data directory; primarily for tests.
const GlobalDataEnv = "PADZ_GLOBAL_DATA"

// Paths carries the resolved data directories. Project points at the .padz
// directory itself (possibly through a link); Global at the per-user data
// directory.
type Paths struct {
	Project string
	Global  string
	// LocalProject is the pre-link project directory, where link files are
	// written and removed.
	LocalProject string
}

// FindProjectRoot walks up from cwd looking for a directory carrying both
// .git and .padz. A directory with .git but no .padz is skipped, so nested
// repos fall through to a parent that actually initialized a store. The
// walk stops at the user's home directory or the filesystem root.
func FindProjectRoot(cwd string) (string, bool) {
	home, _ := os.UserHomeDir()
	current := cwd

	for {
		gitDir := filepath.Join(current, vcsMarker)
		padzDir := filepath.Join(current, MarkerDir)
		if dirExists(gitDir) && dirExists(padzDir) {
			return current, true
		}

		if home != "" && current == home {
			return "", false
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// Resolve computes the scope paths for an invocation.
//
// With an override, the override is the project data directory (with .padz
// appended unless the path already ends in it) and no upward search runs.
// Otherwise the project directory comes from FindProjectRoot, falling back
// to cwd/.padz. The global directory honors PADZ_GLOBAL_DATA, then the OS
// per-user data directory. An existing link file reroutes the project
// directory to the linked project's store.
func Resolve(cwd string, override string) Paths {
	var projectDir string
	if override != "" {
		if filepath.Base(override) == MarkerDir {
			projectDir = override
		} else {
			projectDir = filepath.Join(override, MarkerDir)
		}
	} else if root, ok := FindProjectRoot(cwd); ok {
		projectDir = filepath.Join(root, MarkerDir)
	} else {
		projectDir = filepath.Join(cwd, MarkerDir)
	}

	paths := Paths{
		Project:      projectDir,
		LocalProject: projectDir,
		Global:       GlobalDataDir(),
	}

	if target, ok := readLink(projectDir); ok {
		paths.Project = filepath.Join(target, MarkerDir)
	}

	return paths
}

// ActiveScope picks the scope for an invocation.
func ActiveScope(forceGlobal bool) types.Scope {
	if forceGlobal {
		return types.ScopeGlobal
	}
	return types.ScopeProject
}

// GlobalDataDir resolves the global store directory: the PADZ_GLOBAL_DATA
// override, then the platform's per-user data directory.
func GlobalDataDir() string {
	if dir := os.Getenv(GlobalDataEnv); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", MarkerDir)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "padz")
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, "padz")
		}
		return filepath.Join(home, "AppData", "Local", "padz")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "padz")
		}
		return filepath.Join(home, ".local", "share", "padz")
	}
}

// readLink returns the project root recorded in padzDir/link, if any.
func readLink(padzDir string) (string, bool) {
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

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
