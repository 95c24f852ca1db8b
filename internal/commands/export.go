package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/padz/internal/index"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// Export resolves selectors (all active pads when empty) and returns the
// pads plus their content-file paths. Downstream formatters consume the
// result; the core does not produce archives.
func Export(store storage.DataStore, scope types.Scope, selectors []index.Selector) (*CmdResult, error) {
	var pads []index.DisplayPad
	if len(selectors) == 0 {
		roots, err := IndexedPads(store, scope)
		if err != nil {
			return nil, err
		}
		for _, entry := range index.Linearize(roots) {
			if entry.Pad.Index.Kind == index.Regular {
				pads = append(pads, index.DisplayPad{Pad: entry.Pad.Pad, Index: entry.Pad.Index})
			}
		}
	} else {
		var err error
		pads, err = PadsBySelectors(store, scope, selectors, false)
		if err != nil {
			return nil, err
		}
	}

	result := &CmdResult{ListedPads: pads}
	for _, dp := range pads {
		bucket := types.BucketActive
		if dp.Pad.Metadata.IsDeleted {
			bucket = types.BucketDeleted
		}
		path, err := store.PadPath(scope, bucket, dp.Pad.Metadata.ID)
		if err != nil {
			return nil, err
		}
		result.PadPaths = append(result.PadPaths, path)
	}
	result.AddMessage(Info("Exporting %d pad%s", len(pads), plural(len(pads))))
	return result, nil
}

// Import creates a pad from every file named in paths, whatever its
// extension, and from every file under a named directory whose extension is
// in importExts. Unreadable or empty files are
// skipped with a warning.
func Import(store storage.DataStore, scope types.Scope, paths []string, importExts []string) (*CmdResult, error) {
	result := &CmdResult{}
	imported := 0

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			result.AddMessage(Warning("Skipping %s: %v", p, err))
			continue
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			if extAccepted(path, importExts) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			result.AddMessage(Warning("Skipping %s: %v", file, err))
			continue
		}
		title, content, ok := types.ParsePadContent(string(data))
		if !ok {
			result.AddMessage(Warning("Skipping %s: empty file", file))
			continue
		}

		pad := types.Pad{Metadata: types.NewMetadata(title), Content: content}
		if err := store.SavePad(scope, types.BucketActive, &pad); err != nil {
			return nil, err
		}
		imported++
	}

	result.AddMessage(Success("Imported %d pad%s", imported, plural(imported)))
	return result, nil
}

func extAccepted(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, accepted := range exts {
		if ext == strings.ToLower(accepted) {
			return true
		}
	}
	return false
}
