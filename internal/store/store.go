// Package store defines the datastore abstraction for orderpulse.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/orderpulse/orderpulse/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist within the
// caller's merchant scope.
var ErrNotFound = errors.New("not found")

// OrderQuery defines optional filters for order listings. MerchantID is
// mandatory; every query is tenant scoped.
type OrderQuery struct {
	MerchantID string
	CustomerID *string
	Status     *string
	Since      *time.Time
	Until      *time.Time
	Limit      int // default 50
	Offset     int
	OrderBy    string // "created_at", "total_amount"
}

// Store defines all data access operations for orderpulse.
type Store interface {
	// Merchants
	CreateMerchant(ctx context.Context, m *domain.Merchant) error
	GetMerchant(ctx context.Context, id string) (*domain.Merchant, error)
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)

	// Customers
	UpsertCustomerByEmail(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, merchantID, id string) (*domain.Customer, error)

	// Orders
	CreateOrder(ctx context.Context, o *domain.Order) error
	CreateOrders(ctx context.Context, orders []domain.Order) (int, error)
	GetOrder(ctx context.Context, merchantID, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, opts *OrderQuery) ([]domain.Order, int, error)
	UpdateOrderStatus(ctx context.Context, merchantID, id string, status domain.OrderStatus) error
	DeleteOrder(ctx context.Context, merchantID, id string) error

	// Analytics inputs. All aggregates are computed over counted statuses
	// only, scoped to one merchant, and bounded on both ends: the window
	// is [since, until], never open toward the future.
	SumOrdersInWindow(ctx context.Context, merchantID string, since, until time.Time) (total string, count int, err error)
	CountOrdersInWindow(ctx context.Context, merchantID string, since, until time.Time) (int, error)
	CustomerOrderStats(ctx context.Context, merchantID string, now time.Time) ([]domain.CustomerOrderStats, error)
	CohortMatrix(ctx context.Context, merchantID string, from, until time.Time) ([]domain.CohortCell, error)

	// Alert rules
	CreateRule(ctx context.Context, r *domain.AlertRule) error
	GetRule(ctx context.Context, merchantID, id string) (*domain.AlertRule, error)
	ListRules(ctx context.Context, merchantID string, activeOnly bool) ([]domain.AlertRule, error)
	ListActiveRules(ctx context.Context) ([]domain.AlertRule, error)
	UpdateRule(ctx context.Context, r *domain.AlertRule) error
	DeleteRule(ctx context.Context, merchantID, id string) error
	SetRuleActive(ctx context.Context, merchantID, id string, active bool) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
