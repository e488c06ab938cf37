// Package canary simulates a progressive rollout of a new model behind a
// fixed five-phase traffic ramp with automated quality gates. The simulation
// is a linear state machine with two terminal states: completed and
// rolled_back. No clock is involved; phase durations are informational.
package canary

import (
	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/metrics"
)

// Status is a terminal simulation state.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusRolledBack Status = "rolled_back"
)

// Quality gate thresholds.
const (
	maxErrorRate         = 0.05
	maxLatencyRegression = 500.0
	minAccuracy          = 0.85

	phaseDurationHours = 24
)

// PhaseMetrics are the synthetic quality metrics computed for one phase.
type PhaseMetrics struct {
	ErrorRate          float64 `json:"error_rate"`
	LatencyP99         float64 `json:"latency_p99"`
	BaselineLatencyP99 float64 `json:"baseline_latency_p99"`
	Accuracy           float64 `json:"accuracy"`
}

// PhaseResult is the outcome of one rollout phase.
type PhaseResult struct {
	Phase          string       `json:"phase"`
	TrafficPercent int          `json:"traffic_percent"`
	DurationHours  int          `json:"duration_hours"`
	Metrics        PhaseMetrics `json:"metrics"`
	QualityOK      bool         `json:"quality_ok"`
}

// Result is the full rollout simulation outcome.
type Result struct {
	Status          Status        `json:"status"`
	NewModelLive    string        `json:"new_model_now_in_production,omitempty"`
	FailedAtPhase   string        `json:"failed_at_phase,omitempty"`
	Reason          string        `json:"reason,omitempty"`
	CompletedPhases []PhaseResult `json:"completed_phases"`
}

type phase struct {
	name    string
	percent int
}

// Simulate walks the traffic ramp from currentID to newID, halting with a
// rollback verdict on the first quality-gate failure. finalPercent caps the
// last phase at 100. Unknown model identifiers fail with catalog.ErrNotFound.
func Simulate(cat *catalog.Catalog, currentID, newID string, finalPercent int) (Result, error) {
	current, err := cat.Get(currentID)
	if err != nil {
		return Result{}, err
	}
	next, err := cat.Get(newID)
	if err != nil {
		return Result{}, err
	}

	if finalPercent > 100 {
		finalPercent = 100
	}
	phases := []phase{
		{name: "Shadow", percent: 0},
		{name: "Canary", percent: 5},
		{name: "Early Adopters", percent: 25},
		{name: "Half", percent: 50},
		{name: "Full", percent: finalPercent},
	}

	// The baseline is the pre-rollout model's nominal latency, fixed for
	// the whole simulation.
	baseline := float64(current.SpeedMS)

	result := Result{}
	for _, ph := range phases {
		m := runPhase(next, ph.percent, baseline)
		ok := gatesPass(m)
		result.CompletedPhases = append(result.CompletedPhases, PhaseResult{
			Phase:          ph.name,
			TrafficPercent: ph.percent,
			DurationHours:  phaseDurationHours,
			Metrics:        m,
			QualityOK:      ok,
		})
		if !ok {
			result.Status = StatusRolledBack
			result.FailedAtPhase = ph.name
			result.Reason = failureReason(m)
			return result, nil
		}
	}

	result.Status = StatusCompleted
	result.NewModelLive = next.Key
	return result, nil
}

func runPhase(model catalog.ModelProfile, trafficPercent int, baseline float64) PhaseMetrics {
	f := float64(trafficPercent) / 100
	accuracy := model.QualityScore - f*0.01
	if accuracy < 0 {
		accuracy = 0
	}
	return PhaseMetrics{
		ErrorRate:          metrics.Round4(model.HallucinationRate + f*0.003),
		LatencyP99:         metrics.Round2(float64(model.SpeedMS) + f*60),
		BaselineLatencyP99: baseline,
		Accuracy:           metrics.Round4(accuracy),
	}
}

func gatesPass(m PhaseMetrics) bool {
	return m.ErrorRate < maxErrorRate &&
		m.LatencyP99 < m.BaselineLatencyP99+maxLatencyRegression &&
		m.Accuracy > minAccuracy
}

// failureReason picks the human-readable verdict by priority: error rate
// first, then latency regression, then accuracy.
func failureReason(m PhaseMetrics) string {
	if m.ErrorRate >= maxErrorRate {
		return "Error rate exceeded 5%"
	}
	if m.LatencyP99 >= m.BaselineLatencyP99+maxLatencyRegression {
		return "Latency regression exceeded +500ms"
	}
	return "Accuracy dropped below 85%"
}
