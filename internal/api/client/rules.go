package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Rule is the wire representation of an alert rule.
type Rule struct {
	ID            string `json:"id"`
	Metric        string `json:"metric"`
	Operator      string `json:"operator"`
	Threshold     string `json:"threshold"`
	WindowSeconds int    `json:"time_window_s"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// RuleSpec is the writable part of a rule.
type RuleSpec struct {
	Metric        string `json:"metric"`
	Operator      string `json:"operator"`
	Threshold     string `json:"threshold"`
	WindowSeconds int    `json:"time_window_s"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

// RuleList is a paginated rule listing.
type RuleList struct {
	Rules  []Rule `json:"rules"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// ListRules returns the merchant's alert rules.
func (c *Client) ListRules(ctx context.Context, activeOnly bool, limit, offset int) (*RuleList, error) {
	q := url.Values{}
	if activeOnly {
		q.Set("active", "true")
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	path := "/api/v1/rules"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list RuleList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetRule returns a single rule by ID.
func (c *Client) GetRule(ctx context.Context, id string) (*Rule, error) {
	var r Rule
	if err := c.get(ctx, "/api/v1/rules/"+id, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRule creates a new alert rule.
func (c *Client) CreateRule(ctx context.Context, spec *RuleSpec) (*Rule, error) {
	var created Rule
	if err := c.post(ctx, "/api/v1/rules", spec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRule replaces a rule's spec.
func (c *Client) UpdateRule(ctx context.Context, id string, spec *RuleSpec) (*Rule, error) {
	var updated Rule
	if err := c.put(ctx, "/api/v1/rules/"+id, spec, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/rules/"+id, nil)
}

// SetRuleActive enables or disables a rule.
func (c *Client) SetRuleActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, fmt.Sprintf("/api/v1/rules/%s/active", id), body, nil)
}
