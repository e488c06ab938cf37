package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/wizard"
)

func newModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage the model catalog",
		Long: `Manage the model catalog: list the available models, add custom models,
and choose which models the analysis commands compare by default.

Custom models and the selection persist to user_models.json in the data
directory; the built-in models are never modified.`,
	}

	cmd.AddCommand(newModelsListCommand())
	cmd.AddCommand(newModelsAddCommand())
	cmd.AddCommand(newModelsSelectCommand())

	return cmd
}

func newModelsListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the models in the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			_, snap, err := openCatalog()
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(os.Stdout, map[string]any{
					"models":          snap.Catalog.Profiles(),
					"selected_models": snap.Selected,
				})
			}

			selected := make(map[string]bool, len(snap.Selected))
			for _, id := range snap.Selected {
				selected[id] = true
			}

			rows := make([][]string, 0, snap.Catalog.Len())
			for _, model := range snap.Catalog.Profiles() {
				marker := ""
				if selected[model.Key] {
					marker = "*"
				}
				rows = append(rows, []string{
					marker,
					model.Key,
					truncateName(model.Name, 28),
					model.Provider,
					fmt.Sprintf("$%.4f/$%.4f", model.InputCostPer1K, model.OutputCostPer1K),
					fmt.Sprintf("%dms", model.SpeedMS),
					fmt.Sprintf("%.2f", model.QualityScore),
				})
			}
			table(os.Stdout,
				[]string{"", "Key", "Name", "Provider", "Cost in/out per 1K", "Speed", "Quality"},
				rows)
			fmt.Println("\n* = selected for comparisons")
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	return cmd
}

func newModelsAddCommand() *cobra.Command {
	var (
		name          string
		provider      string
		inputCost     float64
		outputCost    float64
		speedMS       int
		quality       float64
		hallucination float64
		contextWindow int
		bestFor       string
		infraCost     float64
		opsCost       float64
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a custom model to the catalog",
		Long: `Add a custom model to the catalog.

Without flags this runs an interactive form. With --name (or flags) it runs
non-interactively, which suits scripting:

  workbench models add --name "Fine-tuned 7B" --input-cost 0.0004 \
      --output-cost 0.0004 --speed-ms 300 --quality 0.75`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openCatalog()
			if err != nil {
				return err
			}

			initialName := name
			if len(args) == 1 {
				initialName = args[0]
			}

			var profile catalog.ModelProfile
			if cmd.Flags().NFlag() > 0 || initialName != "" {
				if strings.TrimSpace(initialName) == "" {
					return fmt.Errorf("model name is required")
				}
				profile = catalog.ModelProfile{
					Name:                      initialName,
					Provider:                  provider,
					InputCostPer1K:            inputCost,
					OutputCostPer1K:           outputCost,
					SpeedMS:                   speedMS,
					QualityScore:              quality,
					HallucinationRate:         hallucination,
					ContextWindow:             contextWindow,
					BestFor:                   bestFor,
					InfrastructureCostMonthly: infraCost,
					OpsCostMonthly:            opsCost,
				}
			} else {
				profile, err = wizard.RunModelWizard(cmd.InOrStdin(), cmd.OutOrStdout(), initialName)
				if err != nil {
					return err
				}
			}

			key, err := store.AddCustom("", profile)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s as %q and selected it for comparisons\n", profile.Name, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name; the catalog key is derived from it")
	cmd.Flags().StringVar(&provider, "provider", catalog.DefaultCustomProvider, "Provider label")
	cmd.Flags().Float64Var(&inputCost, "input-cost", 0, "Input cost per 1K tokens in USD")
	cmd.Flags().Float64Var(&outputCost, "output-cost", 0, "Output cost per 1K tokens in USD")
	cmd.Flags().IntVar(&speedMS, "speed-ms", catalog.DefaultCustomSpeedMS, "Average response time in milliseconds")
	cmd.Flags().Float64Var(&quality, "quality", catalog.DefaultCustomQuality, "Quality score (0-1)")
	cmd.Flags().Float64Var(&hallucination, "hallucination", catalog.DefaultCustomHallucination, "Hallucination rate (0-1)")
	cmd.Flags().IntVar(&contextWindow, "context-window", catalog.DefaultCustomContextWindow, "Context window in tokens")
	cmd.Flags().StringVar(&bestFor, "best-for", catalog.DefaultCustomBestFor, "Short description of the model's strength")
	cmd.Flags().Float64Var(&infraCost, "infra-cost", 0, "Monthly infrastructure cost in USD (self-hosted)")
	cmd.Flags().Float64Var(&opsCost, "ops-cost", 0, "Monthly operations cost in USD (self-hosted)")

	return cmd
}

func newModelsSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select <model ...>",
		Short: "Choose which models the analysis commands compare",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, _, err := openCatalog()
			if err != nil {
				return err
			}
			selected, err := store.SetSelected(args)
			if err != nil {
				return err
			}
			fmt.Printf("Selected models: %s\n", strings.Join(selected, ", "))
			return nil
		},
	}
}
