package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/internal/store"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

// RulesHandler handles alert rule CRUD operations.
type RulesHandler struct {
	store store.Store
}

// NewRulesHandler creates a new RulesHandler.
func NewRulesHandler(s store.Store) *RulesHandler {
	return &RulesHandler{store: s}
}

// --- Input/Output types ---

// Rule is the wire representation of an alert rule. Thresholds are decimal
// strings to keep money values exact.
type Rule struct {
	ID            string `json:"id"`
	Metric        string `json:"metric"         enum:"orders_per_min,aov,rfm_score_avg"`
	Operator      string `json:"operator"       enum:">,<,>=,<=,=="`
	Threshold     string `json:"threshold"      doc:"Decimal threshold, e.g. \"49.90\""`
	WindowSeconds int    `json:"time_window_s"  doc:"Evaluation window in seconds"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

func ruleFromDomain(r *domain.AlertRule) Rule {
	out := Rule{
		ID:            r.ID,
		Metric:        string(r.Metric),
		Operator:      string(r.Operator),
		Threshold:     r.Threshold.String(),
		WindowSeconds: r.WindowSeconds,
		IsActive:      r.IsActive,
	}
	if !r.CreatedAt.IsZero() {
		out.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !r.UpdatedAt.IsZero() {
		out.UpdatedAt = r.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// RuleSpec is the writable part of a rule.
type RuleSpec struct {
	Metric        string `json:"metric"        enum:"orders_per_min,aov,rfm_score_avg"`
	Operator      string `json:"operator"      enum:">,<,>=,<=,=="`
	Threshold     string `json:"threshold"`
	WindowSeconds int    `json:"time_window_s" minimum:"1"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

func (spec *RuleSpec) toDomain(merchantID string) (*domain.AlertRule, error) {
	if !domain.ValidMetric(domain.MetricName(spec.Metric)) {
		return nil, errors.New("unknown metric")
	}
	if !domain.ValidOperator(domain.Operator(spec.Operator)) {
		return nil, errors.New("unknown operator")
	}
	threshold, err := decimal.NewFromString(spec.Threshold)
	if err != nil {
		return nil, errors.New("threshold is not a valid decimal")
	}
	if spec.WindowSeconds <= 0 {
		return nil, errors.New("time_window_s must be positive")
	}

	active := true
	if spec.IsActive != nil {
		active = *spec.IsActive
	}

	return &domain.AlertRule{
		MerchantID:    merchantID,
		Metric:        domain.MetricName(spec.Metric),
		Operator:      domain.Operator(spec.Operator),
		Threshold:     threshold,
		WindowSeconds: spec.WindowSeconds,
		IsActive:      active,
	}, nil
}

// ListRulesInput is the input for listing rules.
type ListRulesInput struct {
	Active bool `query:"active" doc:"Only return active rules"`
	Limit  int  `query:"limit"  doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset int  `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListRulesOutput is the response for listing rules.
type ListRulesOutput struct {
	Body struct {
		Rules  []Rule `json:"rules"`
		Total  int    `json:"total"`
		Limit  int    `json:"limit"`
		Offset int    `json:"offset"`
	}
}

// RuleIDInput identifies one rule.
type RuleIDInput struct {
	ID string `path:"id" doc:"Rule UUID"`
}

// RuleOutput is the response carrying a single rule.
type RuleOutput struct {
	Body Rule
}

// CreateRuleInput is the input for creating a rule.
type CreateRuleInput struct {
	Body RuleSpec
}

// UpdateRuleInput is the input for updating a rule.
type UpdateRuleInput struct {
	ID   string `path:"id" doc:"Rule UUID"`
	Body RuleSpec
}

// SetRuleActiveInput is the input for toggling a rule.
type SetRuleActiveInput struct {
	ID   string `path:"id" doc:"Rule UUID"`
	Body struct {
		Active bool `json:"active"`
	}
}

// --- Handlers ---

// ListRules returns the merchant's rules, optionally filtered to active
// ones.
func (h *RulesHandler) ListRules(
	ctx context.Context,
	input *ListRulesInput,
) (*ListRulesOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	rules, err := h.store.ListRules(ctx, merchantID, input.Active)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing rules: " + err.Error())
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	total := len(rules)
	start := min(input.Offset, total)
	end := min(start+limit, total)

	out := make([]Rule, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, ruleFromDomain(&rules[i]))
	}

	resp := &ListRulesOutput{}
	resp.Body.Rules = out
	resp.Body.Total = total
	resp.Body.Limit = limit
	resp.Body.Offset = input.Offset
	return resp, nil
}

// GetRule returns a single rule by ID.
func (h *RulesHandler) GetRule(
	ctx context.Context,
	input *RuleIDInput,
) (*RuleOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	r, err := h.store.GetRule(ctx, merchantID, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("rule not found")
		}
		return nil, huma.Error500InternalServerError("getting rule: " + err.Error())
	}

	return &RuleOutput{Body: ruleFromDomain(r)}, nil
}

// CreateRule creates a new alert rule for the merchant.
func (h *RulesHandler) CreateRule(
	ctx context.Context,
	input *CreateRuleInput,
) (*RuleOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	r, err := input.Body.toDomain(merchantID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	if err := h.store.CreateRule(ctx, r); err != nil {
		return nil, huma.Error500InternalServerError("creating rule: " + err.Error())
	}

	return &RuleOutput{Body: ruleFromDomain(r)}, nil
}

// UpdateRule replaces a rule's spec.
func (h *RulesHandler) UpdateRule(
	ctx context.Context,
	input *UpdateRuleInput,
) (*RuleOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	r, err := input.Body.toDomain(merchantID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	r.ID = input.ID

	if err := h.store.UpdateRule(ctx, r); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("rule not found")
		}
		return nil, huma.Error500InternalServerError("updating rule: " + err.Error())
	}

	return &RuleOutput{Body: ruleFromDomain(r)}, nil
}

// DeleteRule removes a rule.
func (h *RulesHandler) DeleteRule(
	ctx context.Context,
	input *RuleIDInput,
) (*struct{}, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	if err := h.store.DeleteRule(ctx, merchantID, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("rule not found")
		}
		return nil, huma.Error500InternalServerError("deleting rule: " + err.Error())
	}

	return &struct{}{}, nil
}

// SetRuleActive enables or disables a rule without touching its spec.
func (h *RulesHandler) SetRuleActive(
	ctx context.Context,
	input *SetRuleActiveInput,
) (*struct{}, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	if err := h.store.SetRuleActive(ctx, merchantID, input.ID, input.Body.Active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("rule not found")
		}
		return nil, huma.Error500InternalServerError("updating rule: " + err.Error())
	}

	return &struct{}{}, nil
}

// RegisterRuleRoutes registers rule endpoints with the Huma API.
func RegisterRuleRoutes(api huma.API, h *RulesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rules",
		Method:      http.MethodGet,
		Path:        "/api/v1/rules",
		Summary:     "List alert rules",
		Description: "Returns the merchant's alert rules with pagination.",
		Tags:        []string{"rules"},
	}, h.ListRules)

	huma.Register(api, huma.Operation{
		OperationID: "get-rule",
		Method:      http.MethodGet,
		Path:        "/api/v1/rules/{id}",
		Summary:     "Get an alert rule by ID",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetRule)

	huma.Register(api, huma.Operation{
		OperationID:   "create-rule",
		Method:        http.MethodPost,
		Path:          "/api/v1/rules",
		Summary:       "Create an alert rule",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateRule)

	huma.Register(api, huma.Operation{
		OperationID: "update-rule",
		Method:      http.MethodPut,
		Path:        "/api/v1/rules/{id}",
		Summary:     "Update an alert rule",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateRule)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-rule",
		Method:        http.MethodDelete,
		Path:          "/api/v1/rules/{id}",
		Summary:       "Delete an alert rule",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteRule)

	huma.Register(api, huma.Operation{
		OperationID:   "set-rule-active",
		Method:        http.MethodPut,
		Path:          "/api/v1/rules/{id}/active",
		Summary:       "Enable or disable an alert rule",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.SetRuleActive)
}
