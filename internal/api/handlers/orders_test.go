package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orderpulse/orderpulse/internal/api/handlers"
	"github.com/orderpulse/orderpulse/internal/store"
	storeMocks "github.com/orderpulse/orderpulse/internal/store/mocks"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

func newOrdersAPI(t *testing.T, maxBatch int) (humatest.TestAPI, *storeMocks.MockStore) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	_, api := humatest.New(t)
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(ms, maxBatch))
	return api, ms
}

func bulkOrder(email, amount string) map[string]any {
	return map[string]any{
		"status":       "paid",
		"currency":     "EUR",
		"total_amount": amount,
		"customer":     map[string]any{"email": email},
	}
}

func TestBulkCreateOrders_Success(t *testing.T) {
	t.Parallel()

	api, ms := newOrdersAPI(t, 0)

	ms.EXPECT().
		UpsertCustomerByEmail(mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
			return c.Email == "a@example.com"
		})).
		Return(&domain.Customer{ID: "c1", Email: "a@example.com"}, nil).
		Once()
	ms.EXPECT().
		UpsertCustomerByEmail(mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
			return c.Email == "b@example.com"
		})).
		Return(&domain.Customer{ID: "c2", Email: "b@example.com"}, nil).
		Once()
	ms.EXPECT().
		CreateOrders(mock.Anything, mock.MatchedBy(func(orders []domain.Order) bool {
			return len(orders) == 2 &&
				orders[0].CustomerID == "c1" &&
				orders[1].CustomerID == "c2" &&
				orders[0].TotalAmount.Equal(decimal.RequireFromString("97.75"))
		})).
		Return(2, nil).
		Once()

	resp := api.Post("/api/v1/orders", map[string]any{
		"orders": []any{
			bulkOrder("a@example.com", "97.75"),
			bulkOrder("b@example.com", "12.00"),
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"created":2`)
}

func TestBulkCreateOrders_BatchTooLarge(t *testing.T) {
	t.Parallel()

	api, _ := newOrdersAPI(t, 2)

	resp := api.Post("/api/v1/orders", map[string]any{
		"orders": []any{
			bulkOrder("a@example.com", "1.00"),
			bulkOrder("b@example.com", "1.00"),
			bulkOrder("c@example.com", "1.00"),
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "batch exceeds 2 orders")
}

func TestBulkCreateOrders_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order map[string]any
	}{
		{
			name: "missing customer email",
			order: map[string]any{
				"status": "paid", "currency": "EUR",
				"total_amount": "1.00", "customer": map[string]any{},
			},
		},
		{
			name: "bad amount",
			order: map[string]any{
				"status": "paid", "currency": "EUR",
				"total_amount": "free",
				"customer":     map[string]any{"email": "a@example.com"},
			},
		},
		{
			name: "negative amount",
			order: map[string]any{
				"status": "paid", "currency": "EUR",
				"total_amount": "-5.00",
				"customer":     map[string]any{"email": "a@example.com"},
			},
		},
		{
			name: "bad created_at",
			order: map[string]any{
				"status": "paid", "currency": "EUR",
				"total_amount": "1.00", "created_at": "yesterday",
				"customer": map[string]any{"email": "a@example.com"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms := newOrdersAPI(t, 0)
			ms.EXPECT().
				UpsertCustomerByEmail(mock.Anything, mock.Anything).
				Return(&domain.Customer{ID: "c1"}, nil).
				Maybe()

			resp := api.Post("/api/v1/orders", map[string]any{
				"orders": []any{tt.order},
			})
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		})
	}
}

func TestListOrders_Filters(t *testing.T) {
	t.Parallel()

	api, ms := newOrdersAPI(t, 0)

	since := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ms.EXPECT().
		ListOrders(mock.Anything, mock.MatchedBy(func(q *store.OrderQuery) bool {
			return q.Status != nil && *q.Status == "paid" &&
				q.Since != nil && q.Since.Equal(since) &&
				q.Limit == 10
		})).
		Return([]domain.Order{
			{
				ID: "o1", CustomerID: "c1", Status: domain.OrderPaid,
				Currency:    "EUR",
				TotalAmount: decimal.RequireFromString("97.75"),
				CreatedAt:   since,
			},
		}, 1, nil).
		Once()

	resp := api.Get("/api/v1/orders?status=paid&since=2026-06-01T00:00:00Z&limit=10")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total_amount":"97.75"`)
	assert.Contains(t, resp.Body.String(), `"total":1`)
}

func TestListOrders_BadSince(t *testing.T) {
	t.Parallel()

	api, _ := newOrdersAPI(t, 0)

	resp := api.Get("/api/v1/orders?since=notatime")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()

	api, ms := newOrdersAPI(t, 0)
	ms.EXPECT().
		GetOrder(mock.Anything, mock.Anything, "missing").
		Return(nil, store.ErrNotFound).
		Once()

	resp := api.Get("/api/v1/orders/missing")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteOrder_Success(t *testing.T) {
	t.Parallel()

	api, ms := newOrdersAPI(t, 0)
	ms.EXPECT().
		DeleteOrder(mock.Anything, mock.Anything, "o1").
		Return(nil).
		Once()

	resp := api.Delete("/api/v1/orders/o1")
	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	t.Parallel()

	api, ms := newOrdersAPI(t, 0)
	ms.EXPECT().
		UpdateOrderStatus(mock.Anything, mock.Anything, "o1", domain.OrderShipped).
		Return(nil).
		Once()

	resp := api.Put("/api/v1/orders/o1/status", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusNoContent, resp.Code)
}
