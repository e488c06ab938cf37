package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/scenarios"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/usecase"
)

func newEvaluateCommand() *cobra.Command {
	var (
		scenarioFile string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "evaluate [model]",
		Short: "Score a model against use-case scenarios",
		Long: `Score one model against a set of test scenarios and compute its weighted
fitness score across accuracy, speed, cost, reliability, context-window
compatibility, and scalability.

Scenarios come from a YAML file (--scenarios) or default to the built-in
customer-support set. With no argument, evaluates the first selected model.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			_, snap, err := openCatalog()
			if err != nil {
				return err
			}

			modelID := ""
			if len(args) == 1 {
				modelID = args[0]
			} else if len(snap.Selected) > 0 {
				modelID = snap.Selected[0]
			}

			list := scenarios.Defaults()
			if scenarioFile != "" {
				list, err = scenarios.LoadFile(scenarioFile)
				if err != nil {
					return err
				}
			}

			result, err := usecase.Evaluate(snap.Catalog, modelID, list)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(os.Stdout, result)
			}
			printEvaluateTable(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioFile, "scenarios", "", "YAML file with test scenarios")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")

	return cmd
}

func printEvaluateTable(result usecase.Result) {
	fmt.Printf("Evaluation of %s (%s)\n\n", result.ModelName, result.Model)

	rows := make([][]string, 0, len(result.TestResults))
	for _, tr := range result.TestResults {
		status := "pass"
		if !tr.Passed {
			status = "FAIL"
		}
		rows = append(rows, []string{
			truncateName(tr.Scenario, 32),
			fmt.Sprintf("%.2f%%", tr.Accuracy*100),
			fmt.Sprintf("%dms", tr.LatencyMS),
			status,
		})
	}
	table(os.Stdout, []string{"Scenario", "Accuracy", "Latency", "Status"}, rows)

	fmt.Printf("\nPassed %d/%d scenarios, overall score %.4f\n",
		result.Passed, result.Total, result.OverallScore)
}
