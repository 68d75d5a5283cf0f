package analytics

import (
	"context"
	"fmt"

	"github.com/orderpulse/orderpulse/pkg/kpi"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

// neutralScore is assigned to a dimension when every customer has the same
// value and quintiles collapse.
const neutralScore = 3

// RFMResult holds per-customer recency/frequency/monetary quintile scores.
// Empty when the merchant has no counted orders.
type RFMResult struct {
	Scores []domain.RFMScore
}

// AverageTotal returns the mean combined score across customers. The second
// return is false when there are no scores.
func (r *RFMResult) AverageTotal() (float64, bool) {
	if len(r.Scores) == 0 {
		return 0, false
	}
	sum := 0
	for _, s := range r.Scores {
		sum += s.Total()
	}
	return float64(sum) / float64(len(r.Scores)), true
}

// RFMScores scores every customer with counted orders on a 1..5 scale per
// dimension. Recency is days since the last order (smaller is better);
// frequency is the counted order count; monetary is total counted spend.
// Boundaries are the 20/40/60/80th percentiles of the merchant's own
// customer base, so scores are always relative to the current population.
func (s *Service) RFMScores(ctx context.Context, merchantID string) (*RFMResult, error) {
	now := s.now()

	stats, err := s.store.CustomerOrderStats(ctx, merchantID, now)
	if err != nil {
		return nil, fmt.Errorf("rfm scores: %w", err)
	}
	if len(stats) == 0 {
		return &RFMResult{}, nil
	}

	recency := make([]float64, len(stats))
	frequency := make([]float64, len(stats))
	monetary := make([]float64, len(stats))
	for i, cs := range stats {
		recency[i] = now.Sub(cs.LastOrderAt).Hours() / 24
		frequency[i] = float64(cs.Frequency)
		monetary[i], _ = cs.Monetary.Float64()
	}

	rScore := dimensionScorer(recency, false)
	fScore := dimensionScorer(frequency, true)
	mScore := dimensionScorer(monetary, true)

	res := &RFMResult{Scores: make([]domain.RFMScore, len(stats))}
	for i, cs := range stats {
		res.Scores[i] = domain.RFMScore{
			CustomerID: cs.CustomerID,
			Recency:    rScore(recency[i]),
			Frequency:  fScore(frequency[i]),
			Monetary:   mScore(monetary[i]),
		}
	}
	return res, nil
}

// dimensionScorer returns a scoring function for one RFM dimension. A
// dimension where every customer is identical scores neutral for all.
func dimensionScorer(values []float64, higherIsBetter bool) func(float64) int {
	if kpi.AllEqual(values) {
		return func(float64) int { return neutralScore }
	}
	bounds := kpi.QuintileBoundaries(values)
	return func(v float64) int {
		return kpi.ScoreByQuintiles(v, bounds, higherIsBetter)
	}
}
