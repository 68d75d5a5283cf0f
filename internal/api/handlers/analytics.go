package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/orderpulse/orderpulse/internal/analytics"
	"github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/pkg/kpi"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

// AnalyticsHandler serves KPI reports.
type AnalyticsHandler struct {
	svc *analytics.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// --- Input/Output types ---

// AOVInput is the input for the rolling AOV report.
type AOVInput struct {
	Window string `query:"window" doc:"Trailing window, e.g. 30d, 12w, 6m, 1y (default 30d)"`
}

// AOVOutput is the rolling AOV report. AOV is null when the window holds
// no counted orders; an empty window is undefined, never zero.
type AOVOutput struct {
	Body struct {
		Window     string  `json:"window"`
		OrderCount int     `json:"order_count"`
		AOV        *string `json:"aov"`
		Defined    bool    `json:"defined"`
	}
}

// RFMOutput is the per-customer RFM score list.
type RFMOutput struct {
	Body struct {
		Scores       []RFMScoreView `json:"scores"`
		AverageTotal *float64       `json:"average_total"`
	}
}

// RFMScoreView is one customer's RFM scores with the combined total.
type RFMScoreView struct {
	CustomerID string `json:"customer_id"`
	Recency    int    `json:"recency"`
	Frequency  int    `json:"frequency"`
	Monetary   int    `json:"monetary"`
	Total      int    `json:"total"`
}

// CohortsInput is the input for the retention matrix. Months are
// inclusive on both ends.
type CohortsInput struct {
	From string `query:"from" doc:"First cohort month, YYYY-MM"`
	To   string `query:"to"   doc:"Last cohort month, YYYY-MM"`
}

// CohortsOutput is the monthly retention matrix.
type CohortsOutput struct {
	Body analytics.CohortReport
}

// --- Handlers ---

// GetAOV returns the rolling average order value for the merchant.
func (h *AnalyticsHandler) GetAOV(
	ctx context.Context,
	input *AOVInput,
) (*AOVOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	window := kpi.DefaultWindow
	if input.Window != "" {
		var err error
		window, err = kpi.ParseWindow(input.Window)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
	}

	res, err := h.svc.RollingAOV(ctx, merchantID, window)
	if err != nil {
		return nil, huma.Error500InternalServerError("computing aov: " + err.Error())
	}

	resp := &AOVOutput{}
	resp.Body.Window = input.Window
	if resp.Body.Window == "" {
		resp.Body.Window = "30d"
	}
	resp.Body.OrderCount = res.OrderCount
	resp.Body.Defined = res.Defined
	if res.Defined {
		v := res.Value.StringFixed(2)
		resp.Body.AOV = &v
	}
	return resp, nil
}

// GetRFM returns RFM quintile scores for every customer with counted
// orders.
func (h *AnalyticsHandler) GetRFM(
	ctx context.Context,
	_ *struct{},
) (*RFMOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	res, err := h.svc.RFMScores(ctx, merchantID)
	if err != nil {
		return nil, huma.Error500InternalServerError("computing rfm: " + err.Error())
	}

	resp := &RFMOutput{}
	resp.Body.Scores = make([]RFMScoreView, 0, len(res.Scores))
	for _, s := range res.Scores {
		resp.Body.Scores = append(resp.Body.Scores, rfmScoreView(s))
	}
	if avg, ok := res.AverageTotal(); ok {
		resp.Body.AverageTotal = &avg
	}
	return resp, nil
}

func rfmScoreView(s domain.RFMScore) RFMScoreView {
	return RFMScoreView{
		CustomerID: s.CustomerID,
		Recency:    s.Recency,
		Frequency:  s.Frequency,
		Monetary:   s.Monetary,
		Total:      s.Total(),
	}
}

// GetCohorts returns the monthly retention matrix.
func (h *AnalyticsHandler) GetCohorts(
	ctx context.Context,
	input *CohortsInput,
) (*CohortsOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	var from, until time.Time
	if input.From != "" {
		m, err := kpi.ParseMonth(input.From)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("from: " + err.Error())
		}
		from = m
	}
	if input.To != "" {
		m, err := kpi.ParseMonth(input.To)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("to: " + err.Error())
		}
		// The query parameter is an inclusive month.
		until = kpi.AddMonths(m, 1)
	}

	if !from.IsZero() && !until.IsZero() && !from.Before(until) {
		return nil, huma.Error422UnprocessableEntity("from must not be after to")
	}

	report, err := h.svc.MonthlyCohorts(ctx, merchantID, from, until)
	if err != nil {
		return nil, huma.Error500InternalServerError("computing cohorts: " + err.Error())
	}

	return &CohortsOutput{Body: *report}, nil
}

// RegisterAnalyticsRoutes registers KPI report endpoints with the Huma
// API.
func RegisterAnalyticsRoutes(api huma.API, h *AnalyticsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-aov",
		Method:      http.MethodGet,
		Path:        "/api/v1/metrics/aov",
		Summary:     "Rolling average order value",
		Description: "Returns the average order value over a trailing window. Undefined (null) when the window has no counted orders.",
		Tags:        []string{"metrics"},
	}, h.GetAOV)

	huma.Register(api, huma.Operation{
		OperationID: "get-rfm",
		Method:      http.MethodGet,
		Path:        "/api/v1/metrics/rfm",
		Summary:     "RFM customer scores",
		Description: "Returns recency/frequency/monetary quintile scores per customer, relative to the merchant's current customer base.",
		Tags:        []string{"metrics"},
	}, h.GetRFM)

	huma.Register(api, huma.Operation{
		OperationID: "get-cohorts",
		Method:      http.MethodGet,
		Path:        "/api/v1/metrics/cohorts",
		Summary:     "Monthly retention cohorts",
		Description: "Returns the monthly cohort retention matrix for customers first seen in the requested month range.",
		Tags:        []string{"metrics"},
	}, h.GetCohorts)
}
