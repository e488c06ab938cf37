package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
	"github.com/GaneshChandgude/llm-selection-workbench/internal/scenarios"
)

func TestEvaluateOpusPassesDefaults(t *testing.T) {
	result, err := Evaluate(catalog.Defaults(), "claude_opus", scenarios.Defaults())
	require.NoError(t, err)

	assert.Equal(t, "claude_opus", result.Model)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Passed)
	require.Len(t, result.TestResults, 3)

	// base accuracy 0.953 - 0.02*0.2 = 0.949, minus per-scenario length
	// penalties of 0.049, 0.060, and 0.047.
	assert.Equal(t, 0.9, result.TestResults[0].Accuracy)
	assert.Equal(t, 0.889, result.TestResults[1].Accuracy)
	assert.Equal(t, 0.902, result.TestResults[2].Accuracy)

	for _, tr := range result.TestResults {
		assert.Equal(t, 820, tr.LatencyMS)
		assert.True(t, tr.Passed)
		assert.True(t, strings.HasPrefix(tr.Actual, "[Claude Opus 4.5] Response to: "))
	}

	assert.InDelta(t, 0.7318, result.OverallScore, 0.001)
}

func TestEvaluateHaikuFailsStrictScenarios(t *testing.T) {
	result, err := Evaluate(catalog.Defaults(), "claude_haiku", scenarios.Defaults())
	require.NoError(t, err)

	// base accuracy 0.762 - 0.06*0.2 = 0.75 never clears the thresholds
	// once length penalties apply.
	assert.Equal(t, 0, result.Passed)
	assert.Equal(t, 3, result.Total)
}

func TestEvaluateScoreBounds(t *testing.T) {
	for _, id := range catalog.DefaultKeys() {
		result, err := Evaluate(catalog.Defaults(), id, scenarios.Defaults())
		require.NoError(t, err)
		if result.OverallScore < 0 || result.OverallScore > 1 {
			t.Errorf("%s: overall score %v out of [0, 1]", id, result.OverallScore)
		}
	}
}

func TestEvaluateEmptyScenarioList(t *testing.T) {
	result, err := Evaluate(catalog.Defaults(), "claude_sonnet", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Passed)
	assert.Empty(t, result.TestResults)
	// Non-accuracy components still contribute to the score.
	assert.Greater(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 1.0)
}

func TestEvaluateLengthPenaltyCaps(t *testing.T) {
	long := scenarios.TestScenario{
		Name:     "long expected",
		Input:    "question",
		Expected: strings.Repeat("x", 500),
	}
	short := scenarios.TestScenario{
		Name:     "short expected",
		Input:    "question",
		Expected: strings.Repeat("x", 80),
	}

	result, err := Evaluate(catalog.Defaults(), "claude_opus", []scenarios.TestScenario{long, short})
	require.NoError(t, err)

	// Both are at or past the 0.08 penalty cap, so they score identically.
	assert.Equal(t, result.TestResults[1].Accuracy, result.TestResults[0].Accuracy)
}

func TestEvaluateTruncatesLongInput(t *testing.T) {
	sc := scenarios.TestScenario{
		Name:     "long input",
		Input:    strings.Repeat("a", 200),
		Expected: "out",
	}
	result, err := Evaluate(catalog.Defaults(), "claude_sonnet", []scenarios.TestScenario{sc})
	require.NoError(t, err)

	actual := result.TestResults[0].Actual
	assert.Equal(t, "[Claude Sonnet 4.5] Response to: "+strings.Repeat("a", 80), actual)
}

func TestEvaluateUnknownModel(t *testing.T) {
	_, err := Evaluate(catalog.Defaults(), "missing", scenarios.Defaults())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestEvaluateInvalidScenario(t *testing.T) {
	bad := []scenarios.TestScenario{{Name: "broken"}}
	_, err := Evaluate(catalog.Defaults(), "claude_sonnet", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, scenarios.ErrInvalidInput)
}
