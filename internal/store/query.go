package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreatedAt = "created_at"
	orderByAmount    = "total_amount"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreatedAt: "created_at DESC",
	orderByAmount:    "total_amount DESC",
}

const defaultOrderBy = "created_at DESC"

const baseOrdersSelect = `SELECT id, merchant_id, customer_id, COALESCE(external_id, ''),
	status, currency, total_amount, created_at
FROM orders`

const countOrdersSelect = "SELECT COUNT(*) FROM orders"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an order
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters. The merchant filter is always
// present.
func (q *OrderQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	conditions := []string{"merchant_id = $1"}
	args = append(args, q.MerchantID)
	paramIdx := 2

	if q.CustomerID != nil {
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", paramIdx))
		args = append(args, *q.CustomerID)
		paramIdx++
	}

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", paramIdx))
		args = append(args, *q.Since)
		paramIdx++
	}

	if q.Until != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", paramIdx))
		args = append(args, *q.Until)
		paramIdx++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseOrdersSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countOrdersSelect + whereClause

	return dataSQL, countSQL, args
}
