package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AOVResult is the rolling average order value over a window. Defined is
// false when the window contains no counted orders; Value is meaningless in
// that case.
type AOVResult struct {
	Window     time.Duration
	OrderCount int
	Value      decimal.Decimal
	Defined    bool
}

// RollingAOV computes the average order value for counted orders in the
// trailing window, rounded to 2 decimal places.
func (s *Service) RollingAOV(
	ctx context.Context,
	merchantID string,
	window time.Duration,
) (*AOVResult, error) {
	now := s.now()

	total, count, err := s.store.SumOrdersInWindow(ctx, merchantID, now.Add(-window), now)
	if err != nil {
		return nil, fmt.Errorf("rolling aov: %w", err)
	}

	res := &AOVResult{Window: window, OrderCount: count}
	if count == 0 {
		return res, nil
	}

	sum, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("rolling aov: parsing sum %q: %w", total, err)
	}

	res.Value = sum.DivRound(decimal.NewFromInt(int64(count)), 2)
	res.Defined = true
	return res, nil
}
