package client

import (
	"context"
	"net/url"
)

// AOVReport is the rolling average order value report. AOV is nil when
// the window has no counted orders.
type AOVReport struct {
	Window     string  `json:"window"`
	OrderCount int     `json:"order_count"`
	AOV        *string `json:"aov"`
	Defined    bool    `json:"defined"`
}

// RFMScore is one customer's recency/frequency/monetary quintile scores.
type RFMScore struct {
	CustomerID string `json:"customer_id"`
	Recency    int    `json:"recency"`
	Frequency  int    `json:"frequency"`
	Monetary   int    `json:"monetary"`
	Total      int    `json:"total"`
}

// RFMReport is the per-customer RFM score list.
type RFMReport struct {
	Scores       []RFMScore `json:"scores"`
	AverageTotal *float64   `json:"average_total"`
}

// CohortRow is one cohort's retention series.
type CohortRow struct {
	Month  string    `json:"cohort"`
	Size   int       `json:"size"`
	Counts []int     `json:"counts"`
	Rates  []float64 `json:"rates"`
}

// CohortReport is the monthly retention matrix.
type CohortReport struct {
	From    string      `json:"from"`
	Until   string      `json:"until"`
	Cohorts []CohortRow `json:"cohorts"`
}

// GetAOV returns the rolling average order value for a window like "30d".
func (c *Client) GetAOV(ctx context.Context, window string) (*AOVReport, error) {
	path := "/api/v1/metrics/aov"
	if window != "" {
		path += "?window=" + url.QueryEscape(window)
	}

	var report AOVReport
	if err := c.get(ctx, path, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetRFM returns RFM quintile scores for every scored customer.
func (c *Client) GetRFM(ctx context.Context) (*RFMReport, error) {
	var report RFMReport
	if err := c.get(ctx, "/api/v1/metrics/rfm", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetCohorts returns the monthly retention matrix. from and to are
// inclusive YYYY-MM months; either may be empty for the default range.
func (c *Client) GetCohorts(ctx context.Context, from, to string) (*CohortReport, error) {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}

	path := "/api/v1/metrics/cohorts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var report CohortReport
	if err := c.get(ctx, path, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
