// Package domain defines the core business types for orderpulse.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

// Order status constants.
const (
	OrderCreated   OrderStatus = "created"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
	OrderRefunded  OrderStatus = "refunded"
)

// CountedStatuses are the order statuses that contribute to analytics.
// Cancelled and refunded orders carry no revenue signal and are excluded.
var CountedStatuses = []OrderStatus{OrderPaid, OrderShipped, OrderDelivered}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderCreated, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

// MetricName identifies a metric an alert rule can watch.
type MetricName string

// Metric name constants.
const (
	MetricOrdersPerMin MetricName = "orders_per_min"
	MetricAOV          MetricName = "aov"
	MetricRFMScoreAvg  MetricName = "rfm_score_avg"
)

// ValidMetric reports whether m is a known metric name.
func ValidMetric(m MetricName) bool {
	switch m {
	case MetricOrdersPerMin, MetricAOV, MetricRFMScoreAvg:
		return true
	}
	return false
}

// Operator is a threshold comparison operator.
type Operator string

// Operator constants.
const (
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "=="
)

// ValidOperator reports whether op is a known comparison operator.
func ValidOperator(op Operator) bool {
	switch op {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual, OpEqual:
		return true
	}
	return false
}

// Compare applies the operator to value against threshold.
func (op Operator) Compare(value, threshold float64) bool {
	switch op {
	case OpGreater:
		return value > threshold
	case OpLess:
		return value < threshold
	case OpGreaterEqual:
		return value >= threshold
	case OpLessEqual:
		return value <= threshold
	case OpEqual:
		return value == threshold
	}
	return false
}

// Merchant represents an isolated tenant. All data and messaging are scoped
// to a merchant; nothing crosses merchant boundaries.
type Merchant struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Customer represents a buyer belonging to one merchant. Email is unique
// per merchant; CreatedAt anchors the customer's retention cohort.
type Customer struct {
	ID         string    `json:"id"                    db:"id"`
	MerchantID string    `json:"merchant_id"           db:"merchant_id"`
	ExternalID string    `json:"external_id,omitempty" db:"external_id"`
	Email      string    `json:"email"                 db:"email"`
	FirstName  string    `json:"first_name,omitempty"  db:"first_name"`
	LastName   string    `json:"last_name,omitempty"   db:"last_name"`
	CreatedAt  time.Time `json:"created_at"            db:"created_at"`
}

// Order represents a single order placed by a customer of a merchant.
// Monetary amounts are exact decimals, never floats.
type Order struct {
	ID          string          `json:"id"                    db:"id"`
	MerchantID  string          `json:"merchant_id"           db:"merchant_id"`
	CustomerID  string          `json:"customer_id"           db:"customer_id"`
	ExternalID  string          `json:"external_id,omitempty" db:"external_id"`
	Status      OrderStatus     `json:"status"                db:"status"`
	Currency    string          `json:"currency"              db:"currency"`
	TotalAmount decimal.Decimal `json:"total_amount"          db:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"            db:"created_at"`
}

// Counted reports whether the order contributes to analytics.
func (o *Order) Counted() bool {
	switch o.Status {
	case OrderPaid, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

// AlertRule is a merchant-scoped threshold rule evaluated on a fixed cycle.
type AlertRule struct {
	ID            string          `json:"id"            db:"id"`
	MerchantID    string          `json:"merchant_id"   db:"merchant_id"`
	Metric        MetricName      `json:"metric"        db:"metric"`
	Operator      Operator        `json:"operator"      db:"operator"`
	Threshold     decimal.Decimal `json:"threshold"     db:"threshold"`
	WindowSeconds int             `json:"time_window_s" db:"time_window_s"`
	IsActive      bool            `json:"is_active"     db:"is_active"`
	CreatedAt     time.Time       `json:"created_at"    db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"    db:"updated_at"`
}

// Window returns the rule's evaluation window as a duration.
func (r *AlertRule) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// AlertEvent is the ephemeral message published when a rule transitions
// into its triggering condition. It is delivered once and never persisted.
type AlertEvent struct {
	RuleID        string  `json:"rule_id"`
	MerchantID    string  `json:"merchant_id"`
	Metric        string  `json:"metric"`
	Operator      string  `json:"operator"`
	Threshold     float64 `json:"threshold"`
	Value         float64 `json:"value"`
	WindowSeconds int     `json:"time_window_s"`
	TriggeredAt   string  `json:"triggered_at"`
	Message       string  `json:"message"`
}

// CustomerOrderStats is a per-customer aggregate over counted orders,
// the raw input to RFM scoring.
type CustomerOrderStats struct {
	CustomerID  string          `db:"customer_id"`
	LastOrderAt time.Time       `db:"last_order_at"`
	Frequency   int             `db:"frequency"`
	Monetary    decimal.Decimal `db:"monetary"`
}

// RFMScore holds the per-dimension quintile scores for one customer.
type RFMScore struct {
	CustomerID string `json:"customer_id"`
	Recency    int    `json:"recency"`
	Frequency  int    `json:"frequency"`
	Monetary   int    `json:"monetary"`
}

// Total returns the combined RFM score.
func (s RFMScore) Total() int {
	return s.Recency + s.Frequency + s.Monetary
}

// CohortCell is one aggregated retention matrix entry: the number of
// distinct customers from the cohort who placed a counted order in the
// given month. A customer's cohort is the month of their first counted
// order, and CohortSize is the number of customers anchored to it.
type CohortCell struct {
	CohortMonth time.Time `db:"cohort_month"`
	OrderMonth  time.Time `db:"order_month"`
	CohortSize  int       `db:"cohort_size"`
	Active      int       `db:"active_customers"`
}
