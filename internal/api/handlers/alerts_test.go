package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labstack/echo/v4"

	"github.com/orderpulse/orderpulse/internal/api/handlers"
	"github.com/orderpulse/orderpulse/internal/api/middleware"
	"github.com/orderpulse/orderpulse/internal/fanout"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAlertServer(t *testing.T, hub *fanout.Hub, secret string) *httptest.Server {
	t.Helper()

	e := echo.New()
	h := handlers.NewAlertsHandler(hub, quietLogger())
	e.GET("/ws/alerts", h.Stream, middleware.Auth(secret))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestAlertStream_DeliversMerchantAlerts(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	hub := fanout.NewHub(fanout.WithLogger(quietLogger()))
	srv := newAlertServer(t, hub, secret)

	token, err := middleware.SignToken(secret, "m1", time.Hour)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/alerts?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return hub.SessionCount("m1") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast("m1", []byte(`{"rule_id":"r1","metric":"aov"}`))
	hub.Broadcast("m2", []byte(`{"rule_id":"other"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"rule_id":"r1"`)

	// The m2 event never arrives on this connection.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
}

func TestAlertStream_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	hub := fanout.NewHub(fanout.WithLogger(quietLogger()))
	srv := newAlertServer(t, hub, "test-secret")

	resp, err := http.Get(srv.URL + "/ws/alerts")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck // test cleanup

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, hub.SessionCount("m1"))
}

func TestAlertStream_RejectsBadToken(t *testing.T) {
	t.Parallel()

	hub := fanout.NewHub(fanout.WithLogger(quietLogger()))
	srv := newAlertServer(t, hub, "test-secret")

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/alerts?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil) //nolint:bodyclose // error path
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
