// Package config loads padz.toml. For the project scope the global file is
// read first and the project file merged over it (project wins); the global
// scope reads the global file alone, so a project's config can never leak
// into global operations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/arthur-debert/padz/internal/types"
)

// FileName is the config file looked up in each scope root.
const FileName = "padz.toml"

// recognizedKeys are the only keys padz.toml may carry.
var recognizedKeys = map[string]bool{
	"file_ext":          true,
	"import_extensions": true,
}

// Config is the resolved configuration.
type Config struct {
	FileExt          string   `mapstructure:"file_ext"`
	ImportExtensions []string `mapstructure:"import_extensions"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		FileExt:          ".txt",
		ImportExtensions: []string{".md", ".txt", ".text", ".lex"},
	}
}

// Load reads and merges padz.toml for the given scope. Missing files are
// fine; malformed files or unknown keys are not.
func Load(globalDir, projectDir string, scope types.Scope) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	defaults := Default()
	v.SetDefault("file_ext", defaults.FileExt)
	v.SetDefault("import_extensions", defaults.ImportExtensions)

	dirs := []string{globalDir}
	if scope == types.ScopeProject && projectDir != "" {
		dirs = append(dirs, projectDir)
	}

	first := true
	for _, dir := range dirs {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := validateKeys(path); err != nil {
			return Config{}, err
		}
		v.SetConfigFile(path)
		if first {
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("reading %s: %w", path, err)
			}
			first = false
		} else {
			if err := v.MergeInConfig(); err != nil {
				return Config{}, fmt.Errorf("merging %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.FileExt = NormalizeExt(cfg.FileExt)
	return cfg, nil
}

// validateKeys rejects unknown keys in a single config file.
func validateKeys(path string) error {
	probe := viper.New()
	probe.SetConfigFile(path)
	probe.SetConfigType("toml")
	if err := probe.ReadInConfig(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	for _, key := range probe.AllKeys() {
		if !recognizedKeys[key] {
			return fmt.Errorf("unknown config key %q in %s", key, path)
		}
	}
	return nil
}

// NormalizeExt ensures a file extension starts with a dot.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ".txt"
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// Set updates one key in the scope's padz.toml, creating the file if
// needed. Unknown keys are rejected.
func Set(dir, key, value string) error {
	if !recognizedKeys[key] {
		return fmt.Errorf("unknown config key %q", key)
	}

	v := viper.New()
	v.SetConfigType("toml")
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	switch key {
	case "file_ext":
		v.Set(key, NormalizeExt(value))
	case "import_extensions":
		parts := strings.Split(value, ",")
		exts := make([]string, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part != "" {
				exts = append(exts, NormalizeExt(part))
			}
		}
		v.Set(key, exts)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}
