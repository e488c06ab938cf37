package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
)

func TestEstimateSonnet(t *testing.T) {
	breakdown, err := Estimate(catalog.Defaults(), Request{
		ModelID:        "claude_sonnet",
		RequestsPerDay: 10000,
	})
	require.NoError(t, err)

	// 300k requests/month: 1800 API + 300000 error correction, no churn
	// because sonnet responds under the 500ms threshold.
	assert.Equal(t, "claude_sonnet", breakdown.ModelKey)
	assert.Equal(t, 1800.0, breakdown.APICost)
	assert.Equal(t, 300000.0, breakdown.ErrorCorrection)
	assert.Equal(t, 0.0, breakdown.ChurnCost)
	assert.Equal(t, 301800.0, breakdown.TotalMonthly)
	assert.Equal(t, 1.006, breakdown.CostPerRequest)
}

func TestEstimateOpusIncludesChurn(t *testing.T) {
	breakdown, err := Estimate(catalog.Defaults(), Request{
		ModelID:        "claude_opus",
		RequestsPerDay: 10000,
	})
	require.NoError(t, err)

	// 820ms is 320ms over the threshold: (320/500)*1% churn on LTV 100.
	assert.Equal(t, 6300.0, breakdown.APICost)
	assert.Equal(t, 150000.0, breakdown.ErrorCorrection)
	assert.Equal(t, 192000.0, breakdown.ChurnCost)
	assert.Equal(t, 348300.0, breakdown.TotalMonthly)
}

func TestEstimateSelfHostedIncludesInfra(t *testing.T) {
	breakdown, err := Estimate(catalog.Defaults(), Request{
		ModelID:        "llama3_self_hosted",
		RequestsPerDay: 10000,
	})
	require.NoError(t, err)

	assert.Equal(t, 8000.0, breakdown.Infrastructure)
	assert.Equal(t, 3000.0, breakdown.Operations)
	assert.Equal(t, 0.0, breakdown.ChurnCost)
	assert.Equal(t, 761120.0, breakdown.TotalMonthly)
}

func TestEstimateHiddenCostsDominateAtScale(t *testing.T) {
	for _, id := range catalog.DefaultKeys() {
		breakdown, err := Estimate(catalog.Defaults(), Request{
			ModelID:        id,
			RequestsPerDay: 10000,
		})
		require.NoError(t, err)
		hidden := breakdown.TotalMonthly - breakdown.APICost
		if hidden < breakdown.APICost {
			t.Errorf("%s: expected hidden costs (%v) to exceed API cost (%v)",
				id, hidden, breakdown.APICost)
		}
	}
}

func TestEstimateZeroVolume(t *testing.T) {
	breakdown, err := Estimate(catalog.Defaults(), Request{
		ModelID:        "claude_haiku",
		RequestsPerDay: 0,
	})
	require.NoError(t, err)

	// Zero volume means zero usage-driven cost, and the per-request divisor
	// is floored at one so the result stays finite.
	assert.Equal(t, 0.0, breakdown.TotalMonthly)
	assert.Equal(t, 0.0, breakdown.CostPerRequest)
}

func TestEstimateCustomTokenCounts(t *testing.T) {
	breakdown, err := Estimate(catalog.Defaults(), Request{
		ModelID:         "claude_haiku",
		RequestsPerDay:  1000,
		AvgInputTokens:  100,
		AvgOutputTokens: 50,
	})
	require.NoError(t, err)

	// 30k requests: (30000*100/1000)*0.0008 + (30000*50/1000)*0.004
	assert.Equal(t, 8.4, breakdown.APICost)
}

func TestEstimateUnknownModel(t *testing.T) {
	_, err := Estimate(catalog.Defaults(), Request{ModelID: "missing", RequestsPerDay: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
