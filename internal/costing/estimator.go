// Package costing computes the total monthly cost of operating a model:
// token pricing plus the hidden costs that dominate real deployments
// (error correction driven by hallucination rate, churn driven by latency).
package costing

import (
	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/metrics"
)

// Defaults for the traffic and unit-cost assumptions.
const (
	DefaultAvgInputTokens  = 500
	DefaultAvgOutputTokens = 300
	DefaultErrorFixCost    = 25.0
	DefaultLatencyChurnLTV = 100.0

	// Latency above this threshold starts costing churn.
	churnLatencyThresholdMS = 500
)

// Request holds the traffic assumption for a cost estimate. Zero-valued
// optional fields take the package defaults.
type Request struct {
	ModelID         string  `json:"model_id"`
	RequestsPerDay  int     `json:"requests_per_day"`
	AvgInputTokens  int     `json:"avg_input_tokens"`
	AvgOutputTokens int     `json:"avg_output_tokens"`
	ErrorFixCost    float64 `json:"error_fix_cost"`
	LatencyChurnLTV float64 `json:"latency_churn_ltv"`
}

func (r Request) withDefaults() Request {
	if r.AvgInputTokens == 0 {
		r.AvgInputTokens = DefaultAvgInputTokens
	}
	if r.AvgOutputTokens == 0 {
		r.AvgOutputTokens = DefaultAvgOutputTokens
	}
	if r.ErrorFixCost == 0 {
		r.ErrorFixCost = DefaultErrorFixCost
	}
	if r.LatencyChurnLTV == 0 {
		r.LatencyChurnLTV = DefaultLatencyChurnLTV
	}
	return r
}

// Breakdown is the monthly cost estimate for one model. Monetary fields are
// rounded to 2 decimal places, CostPerRequest to 4.
type Breakdown struct {
	ModelKey          string  `json:"model_key"`
	ModelName         string  `json:"model_name"`
	APICost           float64 `json:"api_cost"`
	ErrorCorrection   float64 `json:"error_correction"`
	ChurnCost         float64 `json:"churn_cost"`
	Infrastructure    float64 `json:"infrastructure"`
	Operations        float64 `json:"operations"`
	TotalMonthly      float64 `json:"total_monthly"`
	CostPerRequest    float64 `json:"cost_per_request"`
	QualityScore      float64 `json:"quality_score"`
	HallucinationRate float64 `json:"hallucination_rate"`
	SpeedMS           int     `json:"speed_ms"`
}

// Estimate computes the monthly cost breakdown for the requested model
// against the given catalog snapshot. Unknown model identifiers fail with
// catalog.ErrNotFound; the estimator never substitutes a default model.
func Estimate(cat *catalog.Catalog, req Request) (Breakdown, error) {
	model, err := cat.Get(req.ModelID)
	if err != nil {
		return Breakdown{}, err
	}
	req = req.withDefaults()

	requestsPerMonth := float64(req.RequestsPerDay) * 30

	apiCost := (requestsPerMonth*float64(req.AvgInputTokens)/1000)*model.InputCostPer1K +
		(requestsPerMonth*float64(req.AvgOutputTokens)/1000)*model.OutputCostPer1K

	errorCorrection := requestsPerMonth * model.HallucinationRate * req.ErrorFixCost

	churnCost := 0.0
	if model.SpeedMS > churnLatencyThresholdMS {
		churnIncrease := float64(model.SpeedMS-churnLatencyThresholdMS) / churnLatencyThresholdMS * 0.01
		churnCost = requestsPerMonth * req.LatencyChurnLTV * churnIncrease
	}

	total := apiCost + errorCorrection + churnCost +
		model.InfrastructureCostMonthly + model.OpsCostMonthly

	perRequestBase := requestsPerMonth
	if perRequestBase < 1 {
		perRequestBase = 1
	}

	return Breakdown{
		ModelKey:          model.Key,
		ModelName:         model.Name,
		APICost:           metrics.Round2(apiCost),
		ErrorCorrection:   metrics.Round2(errorCorrection),
		ChurnCost:         metrics.Round2(churnCost),
		Infrastructure:    metrics.Round2(model.InfrastructureCostMonthly),
		Operations:        metrics.Round2(model.OpsCostMonthly),
		TotalMonthly:      metrics.Round2(total),
		CostPerRequest:    metrics.Round4(total / perRequestBase),
		QualityScore:      model.QualityScore,
		HallucinationRate: model.HallucinationRate,
		SpeedMS:           model.SpeedMS,
	}, nil
}
