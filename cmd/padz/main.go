// Package main implements the padz CLI: a context-aware note manager for
// developers. The CLI is a thin renderer over the facade; all behavior
// lives in the internal packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arthur-debert/padz/internal/api"
	"github.com/arthur-debert/padz/internal/commands"
	"github.com/arthur-debert/padz/internal/config"
	"github.com/arthur-debert/padz/internal/logging"
	"github.com/arthur-debert/padz/internal/scope"
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/types"
)

var (
	// Global flags
	useGlobal    bool
	dataOverride string
	jsonOutput   bool
	verbose      bool

	// Resolved per invocation by setup()
	padz        *api.PadzAPI
	activeScope types.Scope
	scopePaths  scope.Paths
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "padz",
	Short: "Context-aware notes for developers",
	Long: `padz keeps short notes ("pads") per project and per user.

Inside a repo that ran 'padz init', pads are scoped to that project;
use -g to reach your global pads from anywhere.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// setup resolves scope and config, migrates legacy stores, and builds the
// facade for this invocation.
func setup() error {
	logger = logging.New(verbose)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	scopePaths = scope.Resolve(cwd, dataOverride)
	activeScope = scope.ActiveScope(useGlobal)

	cfg, err := config.Load(scopePaths.Global, scopePaths.Project, activeScope)
	if err != nil {
		return err
	}

	scope.MigrateIfNeeded(scopePaths.Project, logger)
	scope.MigrateIfNeeded(scopePaths.Global, logger)

	store := storage.NewFSStore(scopePaths.Project, scopePaths.Global, cfg.FileExt)
	padz = api.New(store, commands.ScopePaths{
		Project: scopePaths.Project,
		Global:  scopePaths.Global,
	}, cfg)

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&useGlobal, "global", "g", false, "use the global scope")
	rootCmd.PersistentFlags().StringVar(&dataOverride, "data", "", "explicit project data directory (skips discovery)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
