package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/decision"
)

func newRecommendCommand() *cobra.Command {
	var (
		accuracy       float64
		latencyMS      int
		budget         float64
		useCase        string
		requestsPerDay int
		format         string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend the cheapest model meeting hard constraints",
		Long: `Recommend the cheapest model whose quality, latency, and estimated
monthly cost all satisfy the given constraints.

When no model qualifies, the command prints which constraints to relax and
exits with code 1.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			_, snap, err := openCatalog()
			if err != nil {
				return err
			}

			result, err := decision.Recommend(snap.Catalog, decision.Request{
				MinQuality:     accuracy,
				MaxLatencyMS:   latencyMS,
				BudgetPerMonth: budget,
				UseCase:        useCase,
				RequestsPerDay: requestsPerDay,
			})
			if err != nil {
				return err
			}

			if format == "json" {
				if err := printJSON(os.Stdout, result); err != nil {
					return err
				}
			} else {
				printRecommendation(result)
			}

			if result.NoMatch() {
				return &ConstraintError{Message: "no model meets all constraints"}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&accuracy, "accuracy", 0.85, "Minimum quality score (0-1)")
	cmd.Flags().IntVar(&latencyMS, "latency-ms", 1000, "Maximum response time in milliseconds")
	cmd.Flags().Float64Var(&budget, "budget", 10000, "Maximum monthly budget in USD")
	cmd.Flags().StringVar(&useCase, "use-case", "customer_support", "Use case label for the report")
	cmd.Flags().IntVar(&requestsPerDay, "requests-per-day", decision.DefaultRequestsPerDay, "Expected daily request volume")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func printRecommendation(result decision.Result) {
	if result.NoMatch() {
		fmt.Println(result.Message)
		for _, opt := range result.Options {
			fmt.Printf("  - %s\n", opt)
		}
		return
	}

	fmt.Printf("Recommended: %s (%s)\n", result.RecommendedName, result.Recommended)
	fmt.Printf("  %s\n", result.Reasoning)
	fmt.Printf("  Estimated monthly cost: %s (%s under budget)\n",
		usd(result.MonthlyCost), usd(result.SavingsVsBudget))
}
