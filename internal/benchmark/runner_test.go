package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/scenarios"
)

func defaultCases() []scenarios.TestCase {
	return scenarios.Cases(scenarios.Defaults())
}

func TestRunProducesSummaryPerModel(t *testing.T) {
	ids := []string{"claude_opus", "claude_haiku"}
	result, err := Run(catalog.Defaults(), ids, defaultCases(), 2)
	require.NoError(t, err)

	require.Len(t, result.Models, 2)
	for _, id := range ids {
		summary, ok := result.Models[id]
		require.True(t, ok, "missing summary for %s", id)
		require.Len(t, summary.Runs, 2)
		require.Len(t, summary.Runs[0], 3)
		assert.NotEmpty(t, summary.Accuracy)
		assert.NotEmpty(t, summary.LatencyP99)
	}

	assert.Len(t, result.Rankings.ByAccuracy, 2)
	assert.Len(t, result.Rankings.BySpeed, 2)
	assert.Len(t, result.Rankings.ByCost, 2)
}

func TestRunIsDeterministic(t *testing.T) {
	ids := []string{"claude_sonnet", "gpt_4o"}

	first, err := Run(catalog.Defaults(), ids, defaultCases(), 3)
	require.NoError(t, err)
	second, err := Run(catalog.Defaults(), ids, defaultCases(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunLatencyGrowsPerIteration(t *testing.T) {
	result, err := Run(catalog.Defaults(), []string{"claude_haiku"}, defaultCases(), 3)
	require.NoError(t, err)

	runs := result.Models["claude_haiku"].Runs
	require.Len(t, runs, 3)
	assert.Equal(t, 110.0, runs[0][0].LatencyMS)
	assert.Equal(t, 120.0, runs[1][0].LatencyMS)
	assert.Equal(t, 130.0, runs[2][0].LatencyMS)
}

func TestRunRankingOrders(t *testing.T) {
	ids := catalog.DefaultKeys()
	result, err := Run(catalog.Defaults(), ids, defaultCases(), 2)
	require.NoError(t, err)

	acc := result.Rankings.ByAccuracy
	for i := 1; i < len(acc); i++ {
		if acc[i-1].Value < acc[i].Value {
			t.Errorf("accuracy ranking not descending at %d: %v then %v", i, acc[i-1], acc[i])
		}
	}
	speed := result.Rankings.BySpeed
	for i := 1; i < len(speed); i++ {
		if speed[i-1].Value > speed[i].Value {
			t.Errorf("speed ranking not ascending at %d: %v then %v", i, speed[i-1], speed[i])
		}
	}
	cost := result.Rankings.ByCost
	for i := 1; i < len(cost); i++ {
		if cost[i-1].Value > cost[i].Value {
			t.Errorf("cost ranking not ascending at %d: %v then %v", i, cost[i-1], cost[i])
		}
	}

	// Haiku has the lowest p99 latency, the self-hosted model the lowest
	// per-token price.
	assert.Equal(t, "claude_haiku", speed[0].Model)
	assert.Equal(t, "llama3_self_hosted", cost[0].Model)
}

func TestRunDefaultIterations(t *testing.T) {
	result, err := Run(catalog.Defaults(), []string{"claude_sonnet"}, defaultCases(), 0)
	require.NoError(t, err)
	assert.Len(t, result.Models["claude_sonnet"].Runs, DefaultIterations)
}

func TestRunUnknownModel(t *testing.T) {
	_, err := Run(catalog.Defaults(), []string{"missing"}, defaultCases(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRunInvalidCase(t *testing.T) {
	bad := []scenarios.TestCase{{Name: "no expected", Input: "in"}}
	_, err := Run(catalog.Defaults(), []string{"claude_sonnet"}, bad, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, scenarios.ErrInvalidInput)
}

func TestRunAccuracyWithinBounds(t *testing.T) {
	result, err := Run(catalog.Defaults(), catalog.DefaultKeys(), defaultCases(), 2)
	require.NoError(t, err)

	for id, summary := range result.Models {
		agg := summary.Aggregate
		if agg.MinAccuracy < 0 || agg.MaxAccuracy > 1 {
			t.Errorf("%s: accuracy range [%v, %v] out of bounds", id, agg.MinAccuracy, agg.MaxAccuracy)
		}
		if agg.Consistency < 0 || agg.Consistency > 1 {
			t.Errorf("%s: consistency %v out of bounds", id, agg.Consistency)
		}
	}
}
