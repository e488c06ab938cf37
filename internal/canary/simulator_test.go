package canary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
)

func TestSimulateOpusToSonnetCompletes(t *testing.T) {
	result, err := Simulate(catalog.Defaults(), "claude_opus", "claude_sonnet", 100)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, "claude_sonnet", result.NewModelLive)
	assert.Empty(t, result.FailedAtPhase)
	require.Len(t, result.CompletedPhases, 5)

	names := make([]string, 0, 5)
	percents := make([]int, 0, 5)
	for _, ph := range result.CompletedPhases {
		names = append(names, ph.Phase)
		percents = append(percents, ph.TrafficPercent)
		assert.True(t, ph.QualityOK)
		assert.Equal(t, 24, ph.DurationHours)
		assert.Equal(t, 820.0, ph.Metrics.BaselineLatencyP99)
	}
	assert.Equal(t, []string{"Shadow", "Canary", "Early Adopters", "Half", "Full"}, names)
	assert.Equal(t, []int{0, 5, 25, 50, 100}, percents)

	// Full traffic: 0.04 + 0.003 error rate, 420 + 60 latency, 0.881 - 0.01.
	full := result.CompletedPhases[4].Metrics
	assert.Equal(t, 0.043, full.ErrorRate)
	assert.Equal(t, 480.0, full.LatencyP99)
	assert.Equal(t, 0.871, full.Accuracy)
}

func TestSimulateRollsBackOnErrorRate(t *testing.T) {
	// Haiku's 6% hallucination rate trips the error gate immediately.
	result, err := Simulate(catalog.Defaults(), "claude_opus", "claude_haiku", 100)
	require.NoError(t, err)

	assert.Equal(t, StatusRolledBack, result.Status)
	assert.Equal(t, "Shadow", result.FailedAtPhase)
	assert.Equal(t, "Error rate exceeded 5%", result.Reason)
	assert.Empty(t, result.NewModelLive)
	require.Len(t, result.CompletedPhases, 1)
	assert.False(t, result.CompletedPhases[0].QualityOK)
}

func TestSimulateRollsBackOnAccuracy(t *testing.T) {
	cat := catalog.Merge([]catalog.ModelProfile{{
		Key:               "mediocre",
		Name:              "Mediocre",
		SpeedMS:           200,
		QualityScore:      0.84,
		HallucinationRate: 0.01,
	}})

	result, err := Simulate(cat, "claude_opus", "mediocre", 100)
	require.NoError(t, err)

	assert.Equal(t, StatusRolledBack, result.Status)
	assert.Equal(t, "Accuracy dropped below 85%", result.Reason)
}

func TestSimulateRollsBackOnLatencyRegression(t *testing.T) {
	cat := catalog.Merge([]catalog.ModelProfile{{
		Key:               "slow",
		Name:              "Slow",
		SpeedMS:           700,
		QualityScore:      0.95,
		HallucinationRate: 0.01,
	}})

	// Baseline is haiku's 110ms, so 700ms breaches the +500ms gate.
	result, err := Simulate(cat, "claude_haiku", "slow", 100)
	require.NoError(t, err)

	assert.Equal(t, StatusRolledBack, result.Status)
	assert.Equal(t, "Shadow", result.FailedAtPhase)
	assert.Equal(t, "Latency regression exceeded +500ms", result.Reason)
}

func TestSimulateErrorRateTakesPriority(t *testing.T) {
	cat := catalog.Merge([]catalog.ModelProfile{{
		Key:               "broken",
		Name:              "Broken",
		SpeedMS:           2000,
		QualityScore:      0.5,
		HallucinationRate: 0.2,
	}})

	result, err := Simulate(cat, "claude_haiku", "broken", 100)
	require.NoError(t, err)

	// Every gate fails; the error-rate verdict wins.
	assert.Equal(t, "Error rate exceeded 5%", result.Reason)
}

func TestSimulateCapsFinalPercent(t *testing.T) {
	result, err := Simulate(catalog.Defaults(), "claude_opus", "claude_sonnet", 250)
	require.NoError(t, err)

	assert.Equal(t, 100, result.CompletedPhases[4].TrafficPercent)
}

func TestSimulatePartialRamp(t *testing.T) {
	result, err := Simulate(catalog.Defaults(), "claude_opus", "claude_sonnet", 60)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, 60, result.CompletedPhases[4].TrafficPercent)
}

func TestSimulateUnknownModels(t *testing.T) {
	_, err := Simulate(catalog.Defaults(), "missing", "claude_sonnet", 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = Simulate(catalog.Defaults(), "claude_opus", "missing", 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
