// Package metrics provides the small numeric helpers shared by the scoring
// packages: means, extrema, percentile indexing, clamping, and the rounding
// conventions used across result records.
package metrics

import (
	"math"
	"sort"
)

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MinMax returns the smallest and largest values. Returns (0, 0) for empty
// input.
func MinMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mn, mx := values[0], values[0]
	for _, v := range values[1:] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return mn, mx
}

// Percentile sorts a copy of values and returns the p-quantile by index:
// floor(n*p), clamped to the last valid index. p should be in [0, 1].
// Returns 0 for empty input.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := int(float64(n) * p)
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[idx]
}

// Clamp01 clamps v to the [0, 1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// Round2 rounds to 2 decimal places, the convention for monetary and
// millisecond outputs.
func Round2(v float64) float64 { return Round(v, 2) }

// Round4 rounds to 4 decimal places, the convention for accuracies, rates,
// and per-request costs.
func Round4(v float64) float64 { return Round(v, 4) }
