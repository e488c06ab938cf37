package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/config"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/validation"
)

var version = "dev"

// dataDir is shared by every subcommand that touches the catalog overlay.
var dataDir string

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workbench",
		Short: "Workbench - decision support for choosing an LLM provider",
		Long: `Workbench is a command-line tool for LLM provider selection.

It estimates monthly cost including hidden costs, evaluates models against
use-case scenarios, runs synthetic benchmarks, recommends the cheapest model
meeting hard constraints, and simulates canary rollouts.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"Directory holding the custom-model overlay and request history (default from workbench.toml, else \"data\")")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newCostCommand())
	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newBenchmarkCommand())
	cmd.AddCommand(newRecommendCommand())
	cmd.AddCommand(newCanaryCommand())
	cmd.AddCommand(newModelsCommand())
	cmd.AddCommand(newGuideCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}

// openCatalog loads the persisted overlay into a validated store and returns
// the published snapshot alongside it.
func openCatalog() (*catalog.Store, *catalog.Snapshot, error) {
	cfg, err := config.Load(config.DefaultFileName, config.WithDataDir(dataDir))
	if err != nil {
		return nil, nil, err
	}
	store := catalog.NewStore(cfg.OverlayPath(),
		catalog.WithValidator(validation.ValidateOverlayBytes))
	if err := store.Reload(); err != nil {
		return nil, nil, err
	}
	return store, store.Snapshot(), nil
}
