package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuintileBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{
			name:   "empty",
			values: nil,
			want:   nil,
		},
		{
			name:   "single value",
			values: []float64{7},
			want:   []float64{7, 7, 7, 7},
		},
		{
			name:   "ten distinct values",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want:   []float64{2, 4, 6, 8},
		},
		{
			name:   "five values",
			values: []float64{10, 20, 30, 40, 50},
			want:   []float64{10, 20, 30, 40},
		},
		{
			name:   "unsorted input",
			values: []float64{50, 10, 40, 20, 30},
			want:   []float64{10, 20, 30, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := QuintileBoundaries(tt.values)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuintileBoundariesDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 2}
	QuintileBoundaries(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestScoreByQuintiles(t *testing.T) {
	t.Parallel()

	bounds := []float64{2, 4, 6, 8}

	tests := []struct {
		name           string
		value          float64
		higherIsBetter bool
		want           int
	}{
		{"bottom bucket", 1, true, 1},
		{"tie goes to lower bucket", 2, true, 1},
		{"second bucket", 3, true, 2},
		{"tie on second boundary", 4, true, 2},
		{"middle", 5, true, 3},
		{"fourth bucket", 7, true, 4},
		{"top bucket", 9, true, 5},
		{"above all bounds", 100, true, 5},
		{"inverted small is best", 1, false, 5},
		{"inverted large is worst", 9, false, 1},
		{"inverted middle", 5, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ScoreByQuintiles(tt.value, bounds, tt.higherIsBetter)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, AllEqual(nil))
	assert.True(t, AllEqual([]float64{5}))
	assert.True(t, AllEqual([]float64{5, 5, 5}))
	assert.False(t, AllEqual([]float64{5, 5, 6}))
}
