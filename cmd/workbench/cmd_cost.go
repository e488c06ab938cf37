package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/costing"
)

func newCostCommand() *cobra.Command {
	var (
		requestsPerDay int
		inputTokens    int
		outputTokens   int
		format         string
	)

	cmd := &cobra.Command{
		Use:   "cost [model ...]",
		Short: "Estimate true monthly cost per model",
		Long: `Estimate the true monthly cost of each model at a given request volume.

The estimate covers raw API spend plus the hidden costs: error-correction
labor driven by the hallucination rate, slow-response churn, and (for
self-hosted models) infrastructure and operations overhead.

With no arguments, estimates the currently selected models.`,
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

			results := make([]costing.Breakdown, 0, len(ids))
			for _, id := range ids {
				breakdown, err := costing.Estimate(snap.Catalog, costing.Request{
					ModelID:         id,
					RequestsPerDay:  requestsPerDay,
					AvgInputTokens:  inputTokens,
					AvgOutputTokens: outputTokens,
				})
				if err != nil {
					return err
				}
				results = append(results, breakdown)
			}
			sort.SliceStable(results, func(i, j int) bool {
				return results[i].TotalMonthly < results[j].TotalMonthly
			})

			if format == "json" {
				return printJSON(os.Stdout, results)
			}
			printCostTable(results, requestsPerDay)
			return nil
		},
	}

	cmd.Flags().IntVar(&requestsPerDay, "requests-per-day", 10000, "Expected daily request volume")
	cmd.Flags().IntVar(&inputTokens, "input-tokens", costing.DefaultAvgInputTokens, "Average input tokens per request")
	cmd.Flags().IntVar(&outputTokens, "output-tokens", costing.DefaultAvgOutputTokens, "Average output tokens per request")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func printCostTable(results []costing.Breakdown, requestsPerDay int) {
	fmt.Printf("Monthly cost at %d requests/day (cheapest first):\n\n", requestsPerDay)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			truncateName(r.ModelName, 28),
			usd(r.APICost),
			usd(r.ErrorCorrection),
			usd(r.ChurnCost),
			usd(r.Infrastructure + r.Operations),
			usd(r.TotalMonthly),
			fmt.Sprintf("$%.4f", r.CostPerRequest),
		})
	}
	table(os.Stdout,
		[]string{"Model", "API", "Error fix", "Churn", "Hosting", "Total/mo", "Per request"},
		rows)
}
