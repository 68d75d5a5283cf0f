package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// countedStatuses matches domain.CountedStatuses: the order states that
// contribute to analytics.
const countedStatuses = `('paid', 'shipped', 'delivered')`

// Merchant queries.
const (
	queryCreateMerchant = `
		INSERT INTO merchants (name, created_at)
		VALUES (@name, now())
		RETURNING id, created_at`

	queryGetMerchant = `
		SELECT id, name, created_at
		FROM merchants
		WHERE id = $1`

	queryListMerchants = `
		SELECT id, name, created_at
		FROM merchants
		ORDER BY created_at`
)

// Customer queries.
const (
	queryUpsertCustomerByEmail = `
		INSERT INTO customers (
			merchant_id, external_id, email, first_name, last_name, created_at
		) VALUES (
			@merchant_id, @external_id, @email, @first_name, @last_name,
			COALESCE(@created_at, now())
		)
		ON CONFLICT (merchant_id, email) DO UPDATE SET
			external_id = COALESCE(NULLIF(EXCLUDED.external_id, ''), customers.external_id),
			first_name = COALESCE(NULLIF(EXCLUDED.first_name, ''), customers.first_name),
			last_name = COALESCE(NULLIF(EXCLUDED.last_name, ''), customers.last_name)
		RETURNING id, merchant_id, COALESCE(external_id, ''), email,
			COALESCE(first_name, ''), COALESCE(last_name, ''), created_at`

	queryGetCustomer = `
		SELECT id, merchant_id, COALESCE(external_id, ''), email,
			COALESCE(first_name, ''), COALESCE(last_name, ''), created_at
		FROM customers
		WHERE merchant_id = $1 AND id = $2`
)

// Order queries.
const (
	queryCreateOrder = `
		INSERT INTO orders (
			merchant_id, customer_id, external_id, status,
			currency, total_amount, created_at
		) VALUES (
			@merchant_id, @customer_id, @external_id, @status,
			@currency, @total_amount, COALESCE(@created_at, now())
		)
		RETURNING id, created_at`

	queryGetOrder = `
		SELECT id, merchant_id, customer_id, COALESCE(external_id, ''),
			status, currency, total_amount, created_at
		FROM orders
		WHERE merchant_id = $1 AND id = $2`

	queryUpdateOrderStatus = `
		UPDATE orders SET status = $3
		WHERE merchant_id = $1 AND id = $2`

	queryDeleteOrder = `
		DELETE FROM orders
		WHERE merchant_id = $1 AND id = $2`
)

// Analytics queries. Every aggregate filters to counted statuses and one
// merchant. Windows carry an explicit upper bound so client-supplied
// future timestamps cannot leak into current metrics.
const (
	querySumOrdersInWindow = `
		SELECT COALESCE(SUM(total_amount), 0)::text, COUNT(*)
		FROM orders
		WHERE merchant_id = $1
			AND created_at >= $2
			AND created_at <= $3
			AND status IN ` + countedStatuses

	queryCountOrdersInWindow = `
		SELECT COUNT(*)
		FROM orders
		WHERE merchant_id = $1
			AND created_at >= $2
			AND created_at <= $3
			AND status IN ` + countedStatuses

	queryCustomerOrderStats = `
		SELECT customer_id, MAX(created_at), COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE merchant_id = $1
			AND status IN ` + countedStatuses + `
		GROUP BY customer_id
		ORDER BY customer_id`

	// A customer's cohort month is the month of their first counted order,
	// never the registration timestamp: registrations are stamped at upsert
	// time while ingested orders may be backdated. Order months past the
	// range end are excluded rather than trailing off open-ended.
	queryCohortMatrix = `
		WITH firsts AS (
			SELECT customer_id, date_trunc('month', MIN(created_at)) AS cohort_month
			FROM orders
			WHERE merchant_id = $1
				AND status IN ` + countedStatuses + `
			GROUP BY customer_id
		), sizes AS (
			SELECT cohort_month, COUNT(*) AS cohort_size
			FROM firsts
			GROUP BY cohort_month
		)
		SELECT f.cohort_month,
			date_trunc('month', o.created_at) AS order_month,
			sz.cohort_size,
			COUNT(DISTINCT o.customer_id) AS active_customers
		FROM orders o
		JOIN firsts f ON f.customer_id = o.customer_id
		JOIN sizes sz ON sz.cohort_month = f.cohort_month
		WHERE o.merchant_id = $1
			AND f.cohort_month >= $2
			AND f.cohort_month < $3
			AND o.created_at < $3
			AND o.status IN ` + countedStatuses + `
		GROUP BY 1, 2, 3
		ORDER BY 1, 2`
)

// Alert rule queries.
const (
	queryCreateRule = `
		INSERT INTO alert_rules (
			merchant_id, metric, operator, threshold, time_window_s,
			is_active, created_at, updated_at
		) VALUES (
			@merchant_id, @metric, @operator, @threshold, @time_window_s,
			@is_active, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetRule = `
		SELECT id, merchant_id, metric, operator, threshold, time_window_s,
			is_active, created_at, updated_at
		FROM alert_rules
		WHERE merchant_id = $1 AND id = $2`

	queryListRules = `
		SELECT id, merchant_id, metric, operator, threshold, time_window_s,
			is_active, created_at, updated_at
		FROM alert_rules
		WHERE merchant_id = $1
		ORDER BY created_at`

	queryListActiveRulesByMerchant = `
		SELECT id, merchant_id, metric, operator, threshold, time_window_s,
			is_active, created_at, updated_at
		FROM alert_rules
		WHERE merchant_id = $1 AND is_active
		ORDER BY created_at`

	queryListActiveRules = `
		SELECT id, merchant_id, metric, operator, threshold, time_window_s,
			is_active, created_at, updated_at
		FROM alert_rules
		WHERE is_active
		ORDER BY merchant_id, created_at`

	queryUpdateRule = `
		UPDATE alert_rules SET
			metric = @metric,
			operator = @operator,
			threshold = @threshold,
			time_window_s = @time_window_s,
			is_active = @is_active,
			updated_at = now()
		WHERE merchant_id = @merchant_id AND id = @id
		RETURNING updated_at`

	queryDeleteRule = `
		DELETE FROM alert_rules
		WHERE merchant_id = $1 AND id = $2`

	querySetRuleActive = `
		UPDATE alert_rules SET is_active = $3, updated_at = now()
		WHERE merchant_id = $1 AND id = $2`
)
