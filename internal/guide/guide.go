// Package guide holds the static advisory content of the workbench: common
// selection mistakes, re-evaluation triggers, the example comparison output,
// and the end-to-end e-commerce walkthrough. Pure data plus one composition
// over the scoring packages.
package guide

// Mistake pairs an anti-pattern with the corrected practice.
type Mistake struct {
	Title       string `json:"title"`
	AntiPattern string `json:"anti_pattern"`
	Recommended string `json:"recommended"`
}

// Mistakes returns the common model-selection mistakes.
func Mistakes() []Mistake {
	return []Mistake{
		{
			Title:       "Choosing Based on Marketing, Not Testing",
			AntiPattern: "❌ Claude Opus is the 'best' model, so let's use it",
			Recommended: "✅ Sonnet meets our requirements at 40% lower cost",
		},
		{
			Title:       "Not Measuring Hidden Costs",
			AntiPattern: "❌ Haiku is cheapest at $0.004/token",
			Recommended: "✅ Haiku costs $4,200 + $150k/month in error correction = $154k total",
		},
		{
			Title:       "Not Testing on Your Actual Use Cases",
			AntiPattern: "❌ Benchmark models on public datasets only",
			Recommended: "✅ Benchmark on YOUR customer requests",
		},
		{
			Title:       "Not Measuring Consistency",
			AntiPattern: "❌ Run test once, see 90% accuracy, deploy",
			Recommended: "✅ Run test 10 times and inspect min/max/average",
		},
		{
			Title:       "Not Having a Rollback Plan",
			AntiPattern: "❌ Deploy to 100% traffic at once",
			Recommended: "✅ Canary deployment: 5% → 25% → 50% → 100%",
		},
	}
}

// ReevaluationTriggers returns the conditions that should prompt a fresh
// model evaluation, keyed by trigger identifier.
func ReevaluationTriggers() map[string]string {
	return map[string]string{
		"trigger_1_accuracy_regression":         "Accuracy drops >5% compared to baseline",
		"trigger_2_cost_increase":               "Request volume increased, cost now exceeds budget",
		"trigger_3_new_model_released":          "Better model available at similar cost",
		"trigger_4_latency_issue":               "Users reporting slow responses",
		"trigger_5_business_requirement_change": "Need higher accuracy or faster response",
		"trigger_6_annual_review":               "Every 12 months, benchmark all models again",
	}
}

// ComparisonRow is one line of the example comparison table.
type ComparisonRow struct {
	Model       string `json:"model"`
	Accuracy    string `json:"accuracy"`
	Speed       string `json:"speed"`
	Consistency string `json:"consistency"`
	MonthlyCost string `json:"monthly_cost"`
}

// ExampleRecommendation is the sample recommendation block.
type ExampleRecommendation struct {
	Model     string   `json:"model"`
	Reasoning []string `json:"reasoning"`
}

// ExampleOutput is the fixed sample comparison and recommendation.
type ExampleOutput struct {
	Comparison     []ComparisonRow       `json:"comparison"`
	Recommendation ExampleRecommendation `json:"recommendation"`
}

// Example returns the sample comparison output shown in the guide.
func Example() ExampleOutput {
	return ExampleOutput{
		Comparison: []ComparisonRow{
			{
				Model:       "Claude Opus",
				Accuracy:    "95.3% ✅ (Best)",
				Speed:       "820ms",
				Consistency: "98% (Very reliable)",
				MonthlyCost: "$15,500",
			},
			{
				Model:       "Claude Sonnet",
				Accuracy:    "88.1%",
				Speed:       "420ms ✅ (Fast)",
				Consistency: "95%",
				MonthlyCost: "$9,800 ✅ (Best value)",
			},
			{
				Model:       "Claude Haiku",
				Accuracy:    "76.2% ❌ (Weak on complex cases)",
				Speed:       "110ms ✅ (Fastest)",
				Consistency: "82%",
				MonthlyCost: "$4,200",
			},
		},
		Recommendation: ExampleRecommendation{
			Model: "Claude Sonnet",
			Reasoning: []string{
				"88% accuracy is sufficient for your requirements",
				"420ms latency doesn't impact user experience",
				"Save $5,700/month vs Opus",
			},
		},
	}
}
