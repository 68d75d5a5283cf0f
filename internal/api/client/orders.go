package client

import (
	"context"
	"net/url"
	"strconv"
)

// Customer identifies the buyer of an incoming order.
type Customer struct {
	Email      string `json:"email"`
	ExternalID string `json:"external_id,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

// OrderSpec is one order in a bulk ingest request.
type OrderSpec struct {
	ExternalID  string   `json:"external_id,omitempty"`
	Status      string   `json:"status"`
	Currency    string   `json:"currency"`
	TotalAmount string   `json:"total_amount"`
	CreatedAt   string   `json:"created_at,omitempty"`
	Customer    Customer `json:"customer"`
}

// Order is the wire representation of a stored order.
type Order struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	ExternalID  string `json:"external_id,omitempty"`
	Status      string `json:"status"`
	Currency    string `json:"currency"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

// OrderList is a paginated order listing.
type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status string
	Since  string
	Until  string
	Limit  int
	Offset int
}

// BulkCreateOrders ingests a batch of orders and returns how many were
// created.
func (c *Client) BulkCreateOrders(ctx context.Context, orders []OrderSpec) (int, error) {
	body := map[string]any{"orders": orders}
	var resp struct {
		Created int `json:"created"`
	}
	if err := c.post(ctx, "/api/v1/orders", body, &resp); err != nil {
		return 0, err
	}
	return resp.Created, nil
}

// ListOrders returns the merchant's orders.
func (c *Client) ListOrders(ctx context.Context, filter *OrderFilter) (*OrderList, error) {
	q := url.Values{}
	if filter != nil {
		if filter.Status != "" {
			q.Set("status", filter.Status)
		}
		if filter.Since != "" {
			q.Set("since", filter.Since)
		}
		if filter.Until != "" {
			q.Set("until", filter.Until)
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Offset > 0 {
			q.Set("offset", strconv.Itoa(filter.Offset))
		}
	}

	path := "/api/v1/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list OrderList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetOrder returns a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var o Order
	if err := c.get(ctx, "/api/v1/orders/"+id, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
