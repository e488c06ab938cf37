package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/canary"
)

func newCanaryCommand() *cobra.Command {
	var (
		finalPercent int
		format       string
	)

	cmd := &cobra.Command{
		Use:   "canary <current-model> <new-model>",
		Short: "Simulate a phased rollout from one model to another",
		Long: `Simulate migrating traffic from the current model to a new one through
shadow, canary, and ramp-up phases.

Each phase checks projected error rate, p99 latency regression, and accuracy
against fixed quality gates. A failed gate rolls the simulation back and the
command exits with code 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			_, snap, err := openCatalog()
			if err != nil {
				return err
			}

			result, err := canary.Simulate(snap.Catalog, args[0], args[1], finalPercent)
			if err != nil {
				return err
			}

			if format == "json" {
				if err := printJSON(os.Stdout, result); err != nil {
					return err
				}
			} else {
				printCanaryTable(result)
			}

			if result.Status == canary.StatusRolledBack {
				return &ConstraintError{Message: fmt.Sprintf("rollout rolled back at %s: %s",
					result.FailedAtPhase, result.Reason)}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&finalPercent, "final-percent", 100, "Traffic percentage for the final phase")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func printCanaryTable(result canary.Result) {
	rows := make([][]string, 0, len(result.CompletedPhases))
	for _, phase := range result.CompletedPhases {
		status := "ok"
		if !phase.QualityOK {
			status = "FAILED"
		}
		rows = append(rows, []string{
			phase.Phase,
			fmt.Sprintf("%d%%", phase.TrafficPercent),
			fmt.Sprintf("%.2f%%", phase.Metrics.ErrorRate*100),
			fmt.Sprintf("%gms", phase.Metrics.LatencyP99),
			fmt.Sprintf("%.2f%%", phase.Metrics.Accuracy*100),
			status,
		})
	}
	table(os.Stdout,
		[]string{"Phase", "Traffic", "Error rate", "P99 latency", "Accuracy", "Gates"},
		rows)

	fmt.Println()
	if result.Status == canary.StatusCompleted {
		fmt.Printf("Rollout completed: %s is now serving production traffic\n", result.NewModelLive)
	} else {
		fmt.Printf("Rolled back at %s: %s\n", result.FailedAtPhase, result.Reason)
	}
}
