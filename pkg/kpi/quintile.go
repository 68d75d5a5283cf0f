// Package kpi provides the pure computation primitives behind the analytics
// engine: quintile scoring, rolling-window parsing, and calendar-month math.
package kpi

import (
	"math"
	"slices"
)

// QuintileBoundaries returns the 20/40/60/80th percentile cut points for the
// given values using ceil-index selection on the sorted slice. The input is
// not modified. Returns nil for an empty input.
func QuintileBoundaries(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	bounds := make([]float64, 4)
	for i, q := range []float64{0.2, 0.4, 0.6, 0.8} {
		idx := int(math.Ceil(q*float64(n))) - 1
		if idx < 0 {
			idx = 0
		}
		if idx > n-1 {
			idx = n - 1
		}
		bounds[i] = sorted[idx]
	}
	return bounds
}

// ScoreByQuintiles maps value to a 1..5 bucket against boundaries from
// QuintileBoundaries. Ties fall into the lower bucket. When higherIsBetter
// is false the bucket order is inverted, so the smallest values score 5.
//
// When all observed values are identical every boundary collapses to the
// same number; callers should detect that case and assign the neutral
// score 3 instead.
func ScoreByQuintiles(value float64, bounds []float64, higherIsBetter bool) int {
	score := 5
	for i, b := range bounds {
		if value <= b {
			score = i + 1
			break
		}
	}
	if !higherIsBetter {
		score = 6 - score
	}
	return score
}

// AllEqual reports whether every value in the slice is identical.
// Vacuously true for empty input.
func AllEqual(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			return false
		}
	}
	return true
}
