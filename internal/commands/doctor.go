package commands

import (
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

// Doctor runs the reconciler over every bucket and reports what it
// repaired. The same procedure backs the lazy reconciliation on list; this
// entry point exists for operators who want the counts.
func Doctor(store storage.DataStore, scope types.Scope) (*CmdResult, error) {
	report, err := store.Doctor(scope)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	if report.Zero() {
		result.AddMessage(Success("Store is healthy, nothing to fix"))
		return result, nil
	}

	if report.FixedMissingFiles > 0 {
		result.AddMessage(Success("Removed %d index entr%s with missing content", report.FixedMissingFiles, pluralY(report.FixedMissingFiles)))
	}
	if report.RecoveredFiles > 0 {
		result.AddMessage(Success("Recovered %d orphaned pad file%s", report.RecoveredFiles, plural(report.RecoveredFiles)))
	}
	if report.FixedContentFiles > 0 {
		result.AddMessage(Success("Normalized %d content file%s", report.FixedContentFiles, plural(report.FixedContentFiles)))
	}
	return result, nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
