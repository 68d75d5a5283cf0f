// Package analytics computes merchant KPIs from the order store: rolling
// average order value, RFM quintile scores, and monthly cohort retention.
//
// Every computation is scoped to one merchant and counts only paid, shipped
// and delivered orders. When a window contains no data the result is
// explicitly undefined, never zero.
package analytics

import (
	"log/slog"
	"time"

	"github.com/orderpulse/orderpulse/internal/store"
	"github.com/orderpulse/orderpulse/pkg/logger"
)

// Service computes analytics on top of a Store.
type Service struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = logger.Component(log, "analytics")
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates an analytics Service.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		log:   slog.Default(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
