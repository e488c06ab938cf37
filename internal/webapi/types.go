package webapi

import (
	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/scenarios"
)

// ModelsResponse lists the active catalog and the selected identifiers.
type ModelsResponse struct {
	Models         []catalog.ModelProfile `json:"models"`
	SelectedModels []string               `json:"selected_models"`
}

// CostRequest asks for cost breakdowns over a set of models. An empty model
// list means the currently selected models.
type CostRequest struct {
	Models          []string `json:"models"`
	RequestsPerDay  int      `json:"requests_per_day"`
	AvgInputTokens  int      `json:"avg_input_tokens"`
	AvgOutputTokens int      `json:"avg_output_tokens"`
}

// EvaluateRequest asks for a use-case evaluation of one model. An empty
// model falls back to the first selected model; empty scenarios fall back to
// the built-in set.
type EvaluateRequest struct {
	Model     string                   `json:"model"`
	Scenarios []scenarios.TestScenario `json:"scenarios"`
}

// BenchmarkRequest asks for a benchmark over a set of models.
type BenchmarkRequest struct {
	Models     []string             `json:"models"`
	TestCases  []scenarios.TestCase `json:"test_cases"`
	Iterations int                  `json:"iterations"`
}

// DecisionRequest asks for a constraint-based recommendation.
type DecisionRequest struct {
	AccuracyRequirement  float64 `json:"accuracy_requirement"`
	LatencyRequirementMS int     `json:"latency_requirement_ms"`
	BudgetPerMonth       float64 `json:"budget_per_month"`
	UseCase              string  `json:"use_case"`
	RequestsPerDay       int     `json:"requests_per_day"`
}

// CanaryRequest asks for a rollout simulation.
type CanaryRequest struct {
	CurrentModel        string `json:"current_model"`
	NewModel            string `json:"new_model"`
	FinalTrafficPercent int    `json:"final_traffic_percent"`
}

// CustomModelRequest defines a user-supplied model. Omitted numeric fields
// take deterministic defaults.
type CustomModelRequest struct {
	Key                       string   `json:"key"`
	Name                      string   `json:"name"`
	Provider                  string   `json:"provider"`
	InputCostPer1K            float64  `json:"input_cost_per_1k"`
	OutputCostPer1K           float64  `json:"output_cost_per_1k"`
	SpeedMS                   *int     `json:"speed_ms"`
	QualityScore              *float64 `json:"quality_score"`
	HallucinationRate         *float64 `json:"hallucination_rate"`
	ContextWindow             *int     `json:"context_window"`
	BestFor                   string   `json:"best_for"`
	InfrastructureCostMonthly float64  `json:"infrastructure_cost_monthly"`
	OpsCostMonthly            float64  `json:"ops_cost_monthly"`
}

// Profile converts the request into a typed profile, applying the same
// defaults the overlay decoder uses.
func (r CustomModelRequest) Profile() catalog.ModelProfile {
	p := catalog.ModelProfile{
		Name:                      r.Name,
		Provider:                  r.Provider,
		InputCostPer1K:            r.InputCostPer1K,
		OutputCostPer1K:           r.OutputCostPer1K,
		SpeedMS:                   catalog.DefaultCustomSpeedMS,
		QualityScore:              catalog.DefaultCustomQuality,
		HallucinationRate:         catalog.DefaultCustomHallucination,
		ContextWindow:             catalog.DefaultCustomContextWindow,
		BestFor:                   r.BestFor,
		InfrastructureCostMonthly: r.InfrastructureCostMonthly,
		OpsCostMonthly:            r.OpsCostMonthly,
	}
	if p.Provider == "" {
		p.Provider = catalog.DefaultCustomProvider
	}
	if p.BestFor == "" {
		p.BestFor = catalog.DefaultCustomBestFor
	}
	if r.SpeedMS != nil {
		p.SpeedMS = *r.SpeedMS
	}
	if r.QualityScore != nil {
		p.QualityScore = *r.QualityScore
	}
	if r.HallucinationRate != nil {
		p.HallucinationRate = *r.HallucinationRate
	}
	if r.ContextWindow != nil {
		p.ContextWindow = *r.ContextWindow
	}
	return p
}

// SelectRequest replaces the selected-model list.
type SelectRequest struct {
	SelectedModels []string `json:"selected_models"`
}

// SelectResponse echoes the effective selection.
type SelectResponse struct {
	SelectedModels []string `json:"selected_models"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
