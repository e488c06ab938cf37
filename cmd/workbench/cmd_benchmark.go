package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/benchmark"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/scenarios"
)

func newBenchmarkCommand() *cobra.Command {
	var (
		iterations int
		casesFile  string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "benchmark [model ...]",
		Short: "Run a synthetic benchmark across models",
		Long: `Run every model through the same test cases for several iterations and
rank the results by accuracy, p99 latency, and token cost.

The benchmark is fully synthetic: responses are derived from each model's
profile, so results are deterministic and free. Use it to compare relative
standings, not to predict absolute production accuracy.

With no arguments, benchmarks the currently selected models.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			_, snap, err := openCatalog()
			if err != nil {
				return err
			}
			ids := args
			if len(ids) == 0 {
				ids = snap.Selected
			}

			cases := scenarios.Cases(scenarios.Defaults())
			if casesFile != "" {
				cases, err = scenarios.LoadCasesFile(casesFile)
				if err != nil {
					return err
				}
			}

			result, err := benchmark.Run(snap.Catalog, ids, cases, iterations)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(os.Stdout, result)
			}
			printBenchmarkTable(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", benchmark.DefaultIterations, "Iterations per test case")
	cmd.Flags().StringVar(&casesFile, "cases", "", "YAML file with test cases")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func printBenchmarkTable(result benchmark.Result) {
	fmt.Println("Benchmark results (ranked by accuracy):")
	fmt.Println()

	rows := make([][]string, 0, len(result.Rankings.ByAccuracy))
	for _, entry := range result.Rankings.ByAccuracy {
		summary := result.Models[entry.Model]
		rows = append(rows, []string{
			truncateName(summary.Name, 28),
			summary.Accuracy,
			summary.LatencyP99,
			summary.Consistency,
			fmt.Sprintf("$%.4f", summary.EstimatedTokenCost1K),
		})
	}
	table(os.Stdout,
		[]string{"Model", "Accuracy", "P99 latency", "Consistency", "Cost/1K tokens"},
		rows)

	if len(result.Rankings.BySpeed) > 0 {
		fmt.Printf("\nFastest: %s  Cheapest: %s\n",
			result.Rankings.BySpeed[0].Model, result.Rankings.ByCost[0].Model)
	}
}
