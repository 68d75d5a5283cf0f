package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListRules(context.Background(), false, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListRules(context.Background(), false, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_SendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rules":[],"total":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("secret-token"))
	_, err := c.ListRules(context.Background(), false, 0, 0)
	require.NoError(t, err)
}

func TestClient_ListRules(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rules", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(RuleList{
			Rules: []Rule{{ID: "r1", Metric: "aov", Threshold: "49.90"}},
			Total: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	list, err := c.ListRules(context.Background(), true, 0, 0)
	require.NoError(t, err)
	require.Len(t, list.Rules, 1)
	assert.Equal(t, "r1", list.Rules[0].ID)
}

func TestClient_CreateRule(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/rules", r.URL.Path)

		var spec RuleSpec
		require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, "orders_per_min", spec.Metric)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Rule{ID: "r1", Metric: spec.Metric})
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.CreateRule(context.Background(), &RuleSpec{
		Metric: "orders_per_min", Operator: ">", Threshold: "5", WindowSeconds: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", created.ID)
}

func TestClient_BulkCreateOrders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"created":2}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.BulkCreateOrders(context.Background(), []OrderSpec{
		{Status: "paid", Currency: "EUR", TotalAmount: "1.00", Customer: Customer{Email: "a@example.com"}},
		{Status: "paid", Currency: "EUR", TotalAmount: "2.00", Customer: Customer{Email: "b@example.com"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestClient_GetAOV(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/metrics/aov", r.URL.Path)
		assert.Equal(t, "12w", r.URL.Query().Get("window"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"window":"12w","order_count":2,"aov":"97.75","defined":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	report, err := c.GetAOV(context.Background(), "12w")
	require.NoError(t, err)
	require.NotNil(t, report.AOV)
	assert.Equal(t, "97.75", *report.AOV)
}

func TestClient_Listen(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/alerts", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("token"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close() //nolint:errcheck // test cleanup

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"rule_id":"r1"}`)))
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c := New(srv.URL, WithToken("tok"))

	var got string
	err := c.Listen(ctx, func(payload []byte) {
		got = string(payload)
		cancel()
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, strings.Contains(got, `"rule_id":"r1"`))
}
