package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/internal/metrics"
	"github.com/orderpulse/orderpulse/internal/store"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

// defaultMaxBatch caps a bulk ingest request when no limit is configured.
const defaultMaxBatch = 500

// OrdersHandler handles order ingestion and queries.
type OrdersHandler struct {
	store    store.Store
	maxBatch int
}

// NewOrdersHandler creates a new OrdersHandler. maxBatch bounds the size
// of one bulk ingest request; zero means the default.
func NewOrdersHandler(s store.Store, maxBatch int) *OrdersHandler {
	if maxBatch <= 0 {
		maxBatch = defaultMaxBatch
	}
	return &OrdersHandler{store: s, maxBatch: maxBatch}
}

// --- Input/Output types ---

// CustomerSpec identifies the buyer of an incoming order. Email is the
// upsert key within the merchant.
type CustomerSpec struct {
	Email      string `json:"email"                 format:"email"`
	ExternalID string `json:"external_id,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

// OrderSpec is one incoming order in a bulk ingest request. Amounts are
// decimal strings.
type OrderSpec struct {
	ExternalID  string       `json:"external_id,omitempty"`
	Status      string       `json:"status"       enum:"created,paid,shipped,delivered,cancelled,refunded"`
	Currency    string       `json:"currency"     minLength:"3" maxLength:"3"`
	TotalAmount string       `json:"total_amount" doc:"Decimal amount, e.g. \"97.75\""`
	CreatedAt   string       `json:"created_at,omitempty" doc:"RFC 3339; defaults to now"`
	Customer    CustomerSpec `json:"customer"`
}

// BulkCreateOrdersInput is the input for bulk order ingestion.
type BulkCreateOrdersInput struct {
	Body struct {
		Orders []OrderSpec `json:"orders" minItems:"1"`
	}
}

// BulkCreateOrdersOutput is the response for bulk order ingestion.
type BulkCreateOrdersOutput struct {
	Body struct {
		Created int `json:"created"`
	}
}

// ListOrdersInput is the input for listing orders with optional filters.
type ListOrdersInput struct {
	Status     string `query:"status"      doc:"Filter by order status" enum:"created,paid,shipped,delivered,cancelled,refunded,"`
	CustomerID string `query:"customer_id" doc:"Filter by customer UUID"`
	Since      string `query:"since"       doc:"Orders created at or after this RFC 3339 time"`
	Until      string `query:"until"       doc:"Orders created before this RFC 3339 time"`
	Limit      int    `query:"limit"       doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset     int    `query:"offset"      doc:"Pagination offset"              minimum:"0"`
	OrderBy    string `query:"order_by"    doc:"Sort field"                     enum:"created_at,total_amount,"`
}

// OrderView is the wire representation of a stored order.
type OrderView struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	ExternalID  string `json:"external_id,omitempty"`
	Status      string `json:"status"`
	Currency    string `json:"currency"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

func orderView(o *domain.Order) OrderView {
	return OrderView{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		ExternalID:  o.ExternalID,
		Status:      string(o.Status),
		Currency:    o.Currency,
		TotalAmount: o.TotalAmount.StringFixed(2),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ListOrdersOutput is the response for listing orders.
type ListOrdersOutput struct {
	Body struct {
		Orders []OrderView `json:"orders"`
		Total  int         `json:"total"`
		Limit  int         `json:"limit"`
		Offset int         `json:"offset"`
	}
}

// OrderIDInput identifies one order.
type OrderIDInput struct {
	ID string `path:"id" doc:"Order UUID"`
}

// OrderOutput is the response carrying a single order.
type OrderOutput struct {
	Body OrderView
}

// UpdateOrderStatusInput is the input for an order status transition.
type UpdateOrderStatusInput struct {
	ID   string `path:"id" doc:"Order UUID"`
	Body struct {
		Status string `json:"status" enum:"created,paid,shipped,delivered,cancelled,refunded"`
	}
}

// --- Handlers ---

// BulkCreateOrders ingests up to maxBatch orders in one request. Buyers
// are upserted by email; the whole batch is written atomically.
func (h *OrdersHandler) BulkCreateOrders(
	ctx context.Context,
	input *BulkCreateOrdersInput,
) (*BulkCreateOrdersOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	if len(input.Body.Orders) > h.maxBatch {
		return nil, huma.Error422UnprocessableEntity(
			fmt.Sprintf("batch exceeds %d orders", h.maxBatch))
	}

	orders := make([]domain.Order, 0, len(input.Body.Orders))
	for i, spec := range input.Body.Orders {
		o, err := h.buildOrder(ctx, merchantID, &spec)
		if err != nil {
			metrics.IngestionErrorsTotal.Inc()
			return nil, huma.Error422UnprocessableEntity(
				fmt.Sprintf("order %d: %s", i, err))
		}
		orders = append(orders, *o)
	}

	created, err := h.store.CreateOrders(ctx, orders)
	if err != nil {
		metrics.IngestionErrorsTotal.Inc()
		return nil, huma.Error500InternalServerError("creating orders: " + err.Error())
	}

	metrics.IngestionOrdersTotal.Add(float64(created))

	resp := &BulkCreateOrdersOutput{}
	resp.Body.Created = created
	return resp, nil
}

func (h *OrdersHandler) buildOrder(
	ctx context.Context,
	merchantID string,
	spec *OrderSpec,
) (*domain.Order, error) {
	if spec.Customer.Email == "" {
		return nil, errors.New("customer email is required")
	}
	if !domain.ValidStatus(domain.OrderStatus(spec.Status)) {
		return nil, errors.New("unknown status")
	}

	amount, err := decimal.NewFromString(spec.TotalAmount)
	if err != nil {
		return nil, errors.New("total_amount is not a valid decimal")
	}
	if amount.IsNegative() {
		return nil, errors.New("total_amount must not be negative")
	}

	var createdAt time.Time
	if spec.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, spec.CreatedAt)
		if err != nil {
			return nil, errors.New("created_at is not a valid RFC 3339 time")
		}
	}

	customer, err := h.store.UpsertCustomerByEmail(ctx, &domain.Customer{
		MerchantID: merchantID,
		Email:      spec.Customer.Email,
		ExternalID: spec.Customer.ExternalID,
		FirstName:  spec.Customer.FirstName,
		LastName:   spec.Customer.LastName,
	})
	if err != nil {
		return nil, fmt.Errorf("upserting customer: %w", err)
	}

	return &domain.Order{
		MerchantID:  merchantID,
		CustomerID:  customer.ID,
		ExternalID:  spec.ExternalID,
		Status:      domain.OrderStatus(spec.Status),
		Currency:    spec.Currency,
		TotalAmount: amount,
		CreatedAt:   createdAt,
	}, nil
}

// ListOrders returns the merchant's orders with optional filters.
func (h *OrdersHandler) ListOrders(
	ctx context.Context,
	input *ListOrdersInput,
) (*ListOrdersOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	q := &store.OrderQuery{
		MerchantID: merchantID,
		Offset:     input.Offset,
		OrderBy:    input.OrderBy,
	}

	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.CustomerID != "" {
		q.CustomerID = &input.CustomerID
	}
	if input.Since != "" {
		since, err := time.Parse(time.RFC3339, input.Since)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("since is not a valid RFC 3339 time")
		}
		q.Since = &since
	}
	if input.Until != "" {
		until, err := time.Parse(time.RFC3339, input.Until)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("until is not a valid RFC 3339 time")
		}
		q.Until = &until
	}
	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	orders, total, err := h.store.ListOrders(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing orders: " + err.Error())
	}

	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orderView(&orders[i]))
	}

	resp := &ListOrdersOutput{}
	resp.Body.Orders = views
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// GetOrder returns a single order by ID.
func (h *OrdersHandler) GetOrder(
	ctx context.Context,
	input *OrderIDInput,
) (*OrderOutput, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	o, err := h.store.GetOrder(ctx, merchantID, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("order not found")
		}
		return nil, huma.Error500InternalServerError("getting order: " + err.Error())
	}

	return &OrderOutput{Body: orderView(o)}, nil
}

// DeleteOrder removes an order.
func (h *OrdersHandler) DeleteOrder(
	ctx context.Context,
	input *OrderIDInput,
) (*struct{}, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	if err := h.store.DeleteOrder(ctx, merchantID, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("order not found")
		}
		return nil, huma.Error500InternalServerError("deleting order: " + err.Error())
	}

	return &struct{}{}, nil
}

// UpdateOrderStatus transitions an order to a new status.
func (h *OrdersHandler) UpdateOrderStatus(
	ctx context.Context,
	input *UpdateOrderStatusInput,
) (*struct{}, error) {
	merchantID := middleware.MerchantIDFromContext(ctx)

	status := domain.OrderStatus(input.Body.Status)
	if !domain.ValidStatus(status) {
		return nil, huma.Error422UnprocessableEntity("unknown status")
	}

	if err := h.store.UpdateOrderStatus(ctx, merchantID, input.ID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("order not found")
		}
		return nil, huma.Error500InternalServerError("updating order: " + err.Error())
	}

	return &struct{}{}, nil
}

// RegisterOrderRoutes registers order endpoints with the Huma API.
func RegisterOrderRoutes(api huma.API, h *OrdersHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "bulk-create-orders",
		Method:        http.MethodPost,
		Path:          "/api/v1/orders",
		Summary:       "Ingest orders in bulk",
		Description:   "Creates up to the configured batch limit of orders in one atomic request, upserting customers by email.",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusCreated,
	}, h.BulkCreateOrders)

	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "List orders",
		Description: "Returns orders with optional status, customer and time filters.",
		Tags:        []string{"orders"},
	}, h.ListOrders)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders/{id}",
		Summary:     "Get an order by ID",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetOrder)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-order",
		Method:        http.MethodDelete,
		Path:          "/api/v1/orders/{id}",
		Summary:       "Delete an order",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteOrder)

	huma.Register(api, huma.Operation{
		OperationID:   "update-order-status",
		Method:        http.MethodPut,
		Path:          "/api/v1/orders/{id}/status",
		Summary:       "Update an order's status",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.UpdateOrderStatus)
}
