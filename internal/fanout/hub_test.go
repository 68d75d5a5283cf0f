package fanout

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
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dialSession upgrades a test connection for merchantID and returns the
// client side.
func dialSession(t *testing.T, h *Hub, merchantID string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		s := h.NewSession(conn, merchantID)
		go s.Serve()
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.Eventually(t, func() bool {
		return h.SessionCount(merchantID) == 1
	}, time.Second, 10*time.Millisecond)

	return client
}

func TestHub_BroadcastReachesMerchantSessions(t *testing.T) {
	t.Parallel()

	h := NewHub(WithLogger(quietLogger()))
	client := dialSession(t, h, "m1")

	h.Broadcast("m1", []byte(`{"rule_id":"r1"}`))

	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := client.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"rule_id":"r1"}`, string(payload))
}

func TestHub_BroadcastScopedToMerchant(t *testing.T) {
	t.Parallel()

	h := NewHub(WithLogger(quietLogger()))
	client := dialSession(t, h, "m2")

	h.Broadcast("m1", []byte(`{"rule_id":"r1"}`))

	require.NoError(t, client.SetReadDeadline(time.Now().Add(200 * time.Millisecond)))
	_, _, err := client.ReadMessage()
	require.Error(t, err, "a session must never see another merchant's events")
}

func TestHub_BroadcastWithoutSessions(t *testing.T) {
	t.Parallel()

	h := NewHub(WithLogger(quietLogger()))

	// No one is listening; the event is simply dropped.
	h.Broadcast("m1", []byte(`{}`))
	assert.Zero(t, h.SessionCount("m1"))
}

func TestHub_SlowSessionDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	h := NewHub(WithLogger(quietLogger()), WithSendQueueSize(1))
	dialSession(t, h, "m1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			h.Broadcast("m1", []byte(`{}`))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow session")
	}
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	t.Parallel()

	h := NewHub(WithLogger(quietLogger()))
	client := dialSession(t, h, "m1")

	require.NoError(t, client.Close())

	require.Eventually(t, func() bool {
		return h.SessionCount("m1") == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNewHub_Options(t *testing.T) {
	t.Parallel()

	h := NewHub(
		WithWriteTimeout(5*time.Second),
		WithPingInterval(time.Minute),
		WithSendQueueSize(8),
	)

	assert.Equal(t, 5*time.Second, h.writeTimeout)
	assert.Equal(t, time.Minute, h.pingInterval)
	assert.Equal(t, 8, h.sendQueueSize)
}
