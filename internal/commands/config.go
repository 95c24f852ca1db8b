package commands

import (
	"strings"

	"github.com/arthur-debert/padz/internal/config"
	"github.com/arthur-debert/padz/internal/types"
)

// ConfigActionKind discriminates config operations.
type ConfigActionKind int

const (
	ConfigShow ConfigActionKind = iota
	ConfigSet
)

// ConfigAction describes a config command invocation.
type ConfigAction struct {
	Kind  ConfigActionKind
	Key   string
	Value string
}

// Config shows or mutates the scope's padz.toml. Sets write to the scope
// root (project config for project scope, global otherwise).
func Config(paths ScopePaths, scope types.Scope, cfg config.Config, action ConfigAction) (*CmdResult, error) {
	result := &CmdResult{}

	switch action.Kind {
	case ConfigShow:
		result.AddMessage(Info("file_ext = %s", cfg.FileExt))
		result.AddMessage(Info("import_extensions = %s", strings.Join(cfg.ImportExtensions, ", ")))
		return result, nil

	case ConfigSet:
		dir, err := paths.Dir(scope)
		if err != nil {
			return nil, err
		}
		if err := config.Set(dir, action.Key, action.Value); err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		result.AddMessage(Success("Set %s = %s", action.Key, action.Value))
		return result, nil
	}

	return nil, &ValidationError{Message: "unknown config action"}
}
