package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/orderpulse/orderpulse/pkg/kpi"
)

// defaultCohortMonths is how far back the cohort report reaches when the
// caller gives no range.
const defaultCohortMonths = 6

// CohortRow is one cohort's retention series. A customer belongs to the
// month of their first counted order; Counts[i] is the number of distinct
// cohort customers who placed a counted order i months later, and Rates[i]
// is Counts[i] divided by the cohort size. Every cohort customer is active
// in month zero, so rates never exceed 1.
type CohortRow struct {
	Month  string    `json:"cohort"`
	Size   int       `json:"size"`
	Counts []int     `json:"counts"`
	Rates  []float64 `json:"rates"`
}

// CohortReport is the monthly retention matrix for one merchant.
type CohortReport struct {
	From    string      `json:"from"`
	Until   string      `json:"until"`
	Cohorts []CohortRow `json:"cohorts"`
}

// MonthlyCohorts builds the retention matrix for cohorts whose first
// counted order falls in [from, until). Zero values keep the defaults:
// the trailing defaultCohortMonths months up to the current month.
//
// A cohort with activity in its first month but none in a later month gets
// an explicit zero, and rows stop at the last requested month rather than
// running ahead of the range. Orders predating the cohort month are
// ignored.
func (s *Service) MonthlyCohorts(
	ctx context.Context,
	merchantID string,
	from, until time.Time,
) (*CohortReport, error) {
	nowMonth := kpi.MonthStart(s.now())
	if until.IsZero() {
		until = kpi.AddMonths(nowMonth, 1)
	} else {
		until = kpi.MonthStart(until)
	}
	if from.IsZero() {
		from = kpi.AddMonths(until, -defaultCohortMonths)
	} else {
		from = kpi.MonthStart(from)
	}
	if !from.Before(until) {
		return nil, fmt.Errorf("monthly cohorts: from %s is not before until %s",
			kpi.FormatMonth(from), kpi.FormatMonth(until))
	}

	cells, err := s.store.CohortMatrix(ctx, merchantID, from, until)
	if err != nil {
		return nil, fmt.Errorf("monthly cohorts: %w", err)
	}

	byCohort := map[time.Time]map[int]int{}
	sizes := map[time.Time]int{}
	for _, cell := range cells {
		cohort := kpi.MonthStart(cell.CohortMonth)
		offset := kpi.MonthsBetween(cohort, kpi.MonthStart(cell.OrderMonth))
		if offset < 0 {
			continue
		}
		if byCohort[cohort] == nil {
			byCohort[cohort] = map[int]int{}
		}
		byCohort[cohort][offset] = cell.Active
		sizes[cohort] = cell.CohortSize
	}

	months := make([]time.Time, 0, len(byCohort))
	for m := range byCohort {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	report := &CohortReport{
		From:    kpi.FormatMonth(from),
		Until:   kpi.FormatMonth(until),
		Cohorts: make([]CohortRow, 0, len(months)),
	}
	lastMonth := kpi.AddMonths(until, -1)
	for _, m := range months {
		offsets := byCohort[m]

		span := kpi.MonthsBetween(m, lastMonth)
		if span < 0 {
			span = 0
		}
		counts := make([]int, span+1)
		for off, n := range offsets {
			if off < len(counts) {
				counts[off] = n
			}
		}

		size := sizes[m]
		rates := make([]float64, len(counts))
		if size > 0 {
			for i, n := range counts {
				rates[i] = float64(n) / float64(size)
			}
		}

		report.Cohorts = append(report.Cohorts, CohortRow{
			Month:  kpi.FormatMonth(m),
			Size:   size,
			Counts: counts,
			Rates:  rates,
		})
	}

	return report, nil
}
