package guide

import (
	"github.com/GaneshChandgude/llm-selection-workbench/internal/canary"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/costing"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/decision"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/metrics"
)

// EcommerceRequirements are the fixed workload assumptions of the example.
type EcommerceRequirements struct {
	RequestsPerDay int    `json:"requests_per_day"`
	AccuracyNeeded string `json:"accuracy_needed"`
	Latency        string `json:"latency"`
	Budget         int    `json:"budget"`
}

// CostComparison contrasts the old and new models' monthly costs.
type CostComparison struct {
	OldModel       string  `json:"old_model"`
	OldMonthly     float64 `json:"old_monthly"`
	NewModel       string  `json:"new_model"`
	NewMonthly     float64 `json:"new_monthly"`
	MonthlySavings float64 `json:"monthly_savings"`
	AnnualSavings  float64 `json:"annual_savings"`
}

// EcommerceExample is the end-to-end walkthrough: constraint-based decision,
// canary rollout of the winner, and the resulting cost delta.
type EcommerceExample struct {
	Requirements   EcommerceRequirements `json:"requirements"`
	Decision       decision.Result       `json:"decision"`
	Canary         canary.Result         `json:"canary"`
	CostComparison CostComparison        `json:"cost_comparison"`
}

// Ecommerce runs the example against the given catalog snapshot: a 100k
// requests/day support workload migrating from claude_opus to claude_sonnet.
func Ecommerce(cat *catalog.Catalog) (EcommerceExample, error) {
	dec, err := decision.Recommend(cat, decision.Request{
		MinQuality:     0.85,
		MaxLatencyMS:   1000,
		BudgetPerMonth: 12000,
		UseCase:        "customer_support",
		RequestsPerDay: 100000,
	})
	if err != nil {
		return EcommerceExample{}, err
	}

	rollout, err := canary.Simulate(cat, "claude_opus", "claude_sonnet", 100)
	if err != nil {
		return EcommerceExample{}, err
	}

	oldCost, err := costing.Estimate(cat, costing.Request{ModelID: "claude_opus", RequestsPerDay: 100000})
	if err != nil {
		return EcommerceExample{}, err
	}
	newCost, err := costing.Estimate(cat, costing.Request{ModelID: "claude_sonnet", RequestsPerDay: 100000})
	if err != nil {
		return EcommerceExample{}, err
	}

	savings := metrics.Round2(oldCost.TotalMonthly - newCost.TotalMonthly)
	return EcommerceExample{
		Requirements: EcommerceRequirements{
			RequestsPerDay: 100000,
			AccuracyNeeded: "85%+",
			Latency:        "<1s",
			Budget:         12000,
		},
		Decision: dec,
		Canary:   rollout,
		CostComparison: CostComparison{
			OldModel:       "claude_opus",
			OldMonthly:     oldCost.TotalMonthly,
			NewModel:       "claude_sonnet",
			NewMonthly:     newCost.TotalMonthly,
			MonthlySavings: savings,
			AnnualSavings:  metrics.Round2(savings * 12),
		},
	}, nil
}
