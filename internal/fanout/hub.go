// Package fanout delivers alert events to connected WebSocket clients.
// Sessions register per merchant; events published on a merchant's alert
// channel reach only that merchant's sessions.
package fanout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/orderpulse/orderpulse/internal/bus"
	"github.com/orderpulse/orderpulse/internal/metrics"
	"github.com/orderpulse/orderpulse/pkg/logger"
)

const (
	defaultWriteTimeout  = 10 * time.Second
	defaultPingInterval  = 30 * time.Second
	defaultSendQueueSize = 32
)

// Hub tracks live sessions grouped by merchant and broadcasts alert
// payloads to them.
type Hub struct {
	log *slog.Logger

	writeTimeout  time.Duration
	pingInterval  time.Duration
	sendQueueSize int

	mu       sync.RWMutex
	sessions map[string]map[*Session]struct{}
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithLogger sets the logger used by the hub and its sessions.
func WithLogger(log *slog.Logger) HubOption {
	return func(h *Hub) {
		h.log = logger.Component(log, "fanout")
	}
}

// WithWriteTimeout sets the per-message write deadline.
func WithWriteTimeout(d time.Duration) HubOption {
	return func(h *Hub) {
		h.writeTimeout = d
	}
}

// WithPingInterval sets how often idle connections are pinged.
func WithPingInterval(d time.Duration) HubOption {
	return func(h *Hub) {
		h.pingInterval = d
	}
}

// WithSendQueueSize sets the per-session outbound buffer. A session that
// falls this far behind starts dropping events.
func WithSendQueueSize(n int) HubOption {
	return func(h *Hub) {
		h.sendQueueSize = n
	}
}

// NewHub creates a Hub with the given options.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		log:           slog.Default(),
		writeTimeout:  defaultWriteTimeout,
		pingInterval:  defaultPingInterval,
		sendQueueSize: defaultSendQueueSize,
		sessions:      make(map[string]map[*Session]struct{}),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run subscribes the hub to the alert bus and blocks until ctx is
// cancelled.
func (h *Hub) Run(ctx context.Context, b bus.Bus) error {
	return b.Subscribe(ctx, h.Broadcast)
}

// Broadcast delivers a payload to every session of the given merchant.
// Slow sessions drop the event rather than stall the rest.
func (h *Hub) Broadcast(merchantID string, payload []byte) {
	h.mu.RLock()
	targets := make([]*Session, 0, len(h.sessions[merchantID]))
	for s := range h.sessions[merchantID] {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		select {
		case s.send <- payload:
			metrics.FanoutDeliveredTotal.Inc()
		default:
			metrics.FanoutDroppedTotal.Inc()
			h.log.Warn("dropping event for slow session",
				"merchant_id", merchantID,
			)
		}
	}
}

// SessionCount returns the number of live sessions for a merchant.
func (h *Hub) SessionCount(merchantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[merchantID])
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[s.merchantID] == nil {
		h.sessions[s.merchantID] = make(map[*Session]struct{})
	}
	h.sessions[s.merchantID][s] = struct{}{}
	metrics.FanoutSessionsActive.Inc()

	h.log.Info("session connected",
		"merchant_id", s.merchantID,
		"sessions", len(h.sessions[s.merchantID]),
	)
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s.merchantID][s]; !ok {
		return
	}
	delete(h.sessions[s.merchantID], s)
	if len(h.sessions[s.merchantID]) == 0 {
		delete(h.sessions, s.merchantID)
	}
	metrics.FanoutSessionsActive.Dec()

	h.log.Info("session disconnected", "merchant_id", s.merchantID)
}
