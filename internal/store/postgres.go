package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/orderpulse/orderpulse/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// CreateMerchant inserts a new merchant.
func (s *PostgresStore) CreateMerchant(ctx context.Context, m *domain.Merchant) error {
	args := pgx.NamedArgs{
		"name": m.Name,
	}
	return s.pool.QueryRow(ctx, queryCreateMerchant, args).Scan(&m.ID, &m.CreatedAt)
}

// GetMerchant retrieves a merchant by ID.
func (s *PostgresStore) GetMerchant(ctx context.Context, id string) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := s.pool.QueryRow(ctx, queryGetMerchant, id).Scan(&m.ID, &m.Name, &m.CreatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return m, nil
}

// ListMerchants returns all merchants ordered by creation time.
func (s *PostgresStore) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	rows, err := s.pool.Query(ctx, queryListMerchants)
	if err != nil {
		return nil, fmt.Errorf("querying merchants: %w", err)
	}
	defer rows.Close()

	var merchants []domain.Merchant
	for rows.Next() {
		var m domain.Merchant
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating merchants: %w", err)
	}

	return merchants, nil
}

// UpsertCustomerByEmail inserts a customer or returns the existing one.
// Matching is by (merchant_id, email); missing profile fields are filled in
// from the incoming record without overwriting existing values. A non-zero
// CreatedAt is honored on insert so first-seen times can be backfilled.
func (s *PostgresStore) UpsertCustomerByEmail(
	ctx context.Context,
	c *domain.Customer,
) (*domain.Customer, error) {
	var createdAt *time.Time
	if !c.CreatedAt.IsZero() {
		t := c.CreatedAt.UTC()
		createdAt = &t
	}
	args := pgx.NamedArgs{
		"merchant_id": c.MerchantID,
		"external_id": c.ExternalID,
		"email":       c.Email,
		"first_name":  c.FirstName,
		"last_name":   c.LastName,
		"created_at":  createdAt,
	}

	out := &domain.Customer{}
	err := s.pool.QueryRow(ctx, queryUpsertCustomerByEmail, args).Scan(
		&out.ID, &out.MerchantID, &out.ExternalID, &out.Email,
		&out.FirstName, &out.LastName, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting customer: %w", err)
	}
	return out, nil
}

// GetCustomer retrieves a customer within the merchant's scope.
func (s *PostgresStore) GetCustomer(
	ctx context.Context,
	merchantID, id string,
) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := s.pool.QueryRow(ctx, queryGetCustomer, merchantID, id).Scan(
		&c.ID, &c.MerchantID, &c.ExternalID, &c.Email,
		&c.FirstName, &c.LastName, &c.CreatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return c, nil
}

// CreateOrder inserts a single order.
func (s *PostgresStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	return s.pool.QueryRow(ctx, queryCreateOrder, orderArgs(o)).Scan(&o.ID, &o.CreatedAt)
}

// CreateOrders inserts a batch of orders in one transaction and returns the
// number inserted. The batch is all-or-nothing.
func (s *PostgresStore) CreateOrders(ctx context.Context, orders []domain.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	batch := &pgx.Batch{}
	for i := range orders {
		batch.Queue(queryCreateOrder, orderArgs(&orders[i]))
	}

	results := tx.SendBatch(ctx, batch)
	for i := range orders {
		if err := results.QueryRow().Scan(&orders[i].ID, &orders[i].CreatedAt); err != nil {
			results.Close()
			return 0, fmt.Errorf("inserting order %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("closing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing orders: %w", err)
	}
	return len(orders), nil
}

func orderArgs(o *domain.Order) pgx.NamedArgs {
	var createdAt *time.Time
	if !o.CreatedAt.IsZero() {
		t := o.CreatedAt.UTC()
		createdAt = &t
	}
	return pgx.NamedArgs{
		"merchant_id":  o.MerchantID,
		"customer_id":  o.CustomerID,
		"external_id":  o.ExternalID,
		"status":       string(o.Status),
		"currency":     o.Currency,
		"total_amount": o.TotalAmount,
		"created_at":   createdAt,
	}
}

// GetOrder retrieves an order within the merchant's scope.
func (s *PostgresStore) GetOrder(
	ctx context.Context,
	merchantID, id string,
) (*domain.Order, error) {
	o := &domain.Order{}
	err := scanOrder(s.pool.QueryRow(ctx, queryGetOrder, merchantID, id), o)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return o, nil
}

// ListOrders queries orders with optional filters, returning results and
// total count.
func (s *PostgresStore) ListOrders(
	ctx context.Context,
	opts *OrderQuery,
) ([]domain.Order, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, total, nil
}

// UpdateOrderStatus transitions an order's status within the merchant's scope.
func (s *PostgresStore) UpdateOrderStatus(
	ctx context.Context,
	merchantID, id string,
	status domain.OrderStatus,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateOrderStatus, merchantID, id, string(status))
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteOrder(ctx context.Context, merchantID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteOrder, merchantID, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SumOrdersInWindow returns the exact decimal sum (as a string) and count
// of counted orders in [since, until].
func (s *PostgresStore) SumOrdersInWindow(
	ctx context.Context,
	merchantID string,
	since, until time.Time,
) (string, int, error) {
	var total string
	var count int
	err := s.pool.QueryRow(ctx, querySumOrdersInWindow, merchantID, since, until).Scan(&total, &count)
	if err != nil {
		return "", 0, fmt.Errorf("summing orders: %w", err)
	}
	return total, count, nil
}

// CountOrdersInWindow returns the number of counted orders in [since, until].
func (s *PostgresStore) CountOrdersInWindow(
	ctx context.Context,
	merchantID string,
	since, until time.Time,
) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, queryCountOrdersInWindow, merchantID, since, until).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting orders: %w", err)
	}
	return count, nil
}

// CustomerOrderStats returns the per-customer recency/frequency/monetary
// aggregate over counted orders.
func (s *PostgresStore) CustomerOrderStats(
	ctx context.Context,
	merchantID string,
	_ time.Time,
) ([]domain.CustomerOrderStats, error) {
	rows, err := s.pool.Query(ctx, queryCustomerOrderStats, merchantID)
	if err != nil {
		return nil, fmt.Errorf("querying customer stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.CustomerOrderStats
	for rows.Next() {
		var cs domain.CustomerOrderStats
		if err := rows.Scan(&cs.CustomerID, &cs.LastOrderAt, &cs.Frequency, &cs.Monetary); err != nil {
			return nil, fmt.Errorf("scanning customer stats: %w", err)
		}
		stats = append(stats, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer stats: %w", err)
	}

	return stats, nil
}

// CohortMatrix returns distinct-active-customer counts grouped by cohort
// month and order month, for cohorts whose first counted order falls in
// [from, until). Order months at or past until are excluded.
func (s *PostgresStore) CohortMatrix(
	ctx context.Context,
	merchantID string,
	from, until time.Time,
) ([]domain.CohortCell, error) {
	rows, err := s.pool.Query(ctx, queryCohortMatrix, merchantID, from, until)
	if err != nil {
		return nil, fmt.Errorf("querying cohort matrix: %w", err)
	}
	defer rows.Close()

	var cells []domain.CohortCell
	for rows.Next() {
		var c domain.CohortCell
		if err := rows.Scan(&c.CohortMonth, &c.OrderMonth, &c.CohortSize, &c.Active); err != nil {
			return nil, fmt.Errorf("scanning cohort cell: %w", err)
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cohort cells: %w", err)
	}

	return cells, nil
}

// CreateRule inserts a new alert rule.
func (s *PostgresStore) CreateRule(ctx context.Context, r *domain.AlertRule) error {
	args := pgx.NamedArgs{
		"merchant_id":   r.MerchantID,
		"metric":        string(r.Metric),
		"operator":      string(r.Operator),
		"threshold":     r.Threshold,
		"time_window_s": r.WindowSeconds,
		"is_active":     r.IsActive,
	}
	return s.pool.QueryRow(ctx, queryCreateRule, args).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

// GetRule retrieves a rule within the merchant's scope.
func (s *PostgresStore) GetRule(
	ctx context.Context,
	merchantID, id string,
) (*domain.AlertRule, error) {
	r := &domain.AlertRule{}
	err := scanRule(s.pool.QueryRow(ctx, queryGetRule, merchantID, id), r)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return r, nil
}

// ListRules returns all rules for a merchant, optionally active only.
func (s *PostgresStore) ListRules(
	ctx context.Context,
	merchantID string,
	activeOnly bool,
) ([]domain.AlertRule, error) {
	query := queryListRules
	if activeOnly {
		query = queryListActiveRulesByMerchant
	}
	return s.queryRules(ctx, query, merchantID)
}

// ListActiveRules returns all active rules across every merchant, for the
// evaluation engine.
func (s *PostgresStore) ListActiveRules(ctx context.Context) ([]domain.AlertRule, error) {
	return s.queryRules(ctx, queryListActiveRules)
}

// UpdateRule updates a rule's definition within the merchant's scope.
func (s *PostgresStore) UpdateRule(ctx context.Context, r *domain.AlertRule) error {
	args := pgx.NamedArgs{
		"id":            r.ID,
		"merchant_id":   r.MerchantID,
		"metric":        string(r.Metric),
		"operator":      string(r.Operator),
		"threshold":     r.Threshold,
		"time_window_s": r.WindowSeconds,
		"is_active":     r.IsActive,
	}
	err := s.pool.QueryRow(ctx, queryUpdateRule, args).Scan(&r.UpdatedAt)
	if err != nil {
		return mapNoRows(err)
	}
	return nil
}

// DeleteRule removes a rule within the merchant's scope.
func (s *PostgresStore) DeleteRule(ctx context.Context, merchantID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteRule, merchantID, id)
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRuleActive toggles a rule's active flag within the merchant's scope.
func (s *PostgresStore) SetRuleActive(
	ctx context.Context,
	merchantID, id string,
	active bool,
) error {
	tag, err := s.pool.Exec(ctx, querySetRuleActive, merchantID, id, active)
	if err != nil {
		return fmt.Errorf("setting rule active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryRules(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.AlertRule, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.AlertRule
	for rows.Next() {
		var r domain.AlertRule
		if err := scanRule(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rules: %w", err)
	}

	return rules, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner, o *domain.Order) error {
	return row.Scan(
		&o.ID, &o.MerchantID, &o.CustomerID, &o.ExternalID,
		&o.Status, &o.Currency, &o.TotalAmount, &o.CreatedAt,
	)
}

func scanRule(row rowScanner, r *domain.AlertRule) error {
	return row.Scan(
		&r.ID, &r.MerchantID, &r.Metric, &r.Operator, &r.Threshold,
		&r.WindowSeconds, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
}
