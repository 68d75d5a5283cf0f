// Package engine evaluates merchant alert rules on a fixed cycle and
// publishes edge-triggered alert events to the bus.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/orderpulse/orderpulse/internal/analytics"
	"github.com/orderpulse/orderpulse/internal/bus"
	"github.com/orderpulse/orderpulse/internal/metrics"
	"github.com/orderpulse/orderpulse/internal/store"
	"github.com/orderpulse/orderpulse/pkg/logger"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

// Engine runs the rule evaluation cycle: load active rules, compute each
// rule's metric over its window, compare against the threshold, and publish
// an alert event exactly when a rule transitions from quiet to triggering.
type Engine struct {
	store     store.Store
	analytics *analytics.Service
	bus       bus.Bus
	log       *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	firing map[string]bool // rule ID -> condition held last cycle
}

// NewEngine creates an Engine with injected dependencies.
func NewEngine(s store.Store, a *analytics.Service, b bus.Bus, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:     s,
		analytics: a,
		bus:       b,
		log:       slog.Default(),
		now:       func() time.Time { return time.Now().UTC() },
		firing:    map[string]bool{},
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = logger.Component(l, "engine")
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// metricKey identifies one computed metric value within a cycle. Rules on
// the same merchant, metric and window share a single computation.
type metricKey struct {
	merchantID string
	metric     domain.MetricName
	windowS    int
}

// metricValue is a computed metric. defined is false when the window holds
// no data; an undefined metric never satisfies a rule.
type metricValue struct {
	value   float64
	defined bool
}

// RunCycle evaluates every active rule once. Rule failures are isolated:
// an error on one rule logs and moves on. Rules deleted or deactivated
// since the last cycle lose their firing state, so re-enabling a rule can
// trigger it again.
func (eng *Engine) RunCycle(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.EvaluationCycleDuration.Observe(time.Since(start).Seconds())
	}()

	rules, err := eng.store.ListActiveRules(ctx)
	if err != nil {
		return fmt.Errorf("listing active rules: %w", err)
	}

	cache := map[metricKey]metricValue{}
	seen := make(map[string]bool, len(rules))

	for i := range rules {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		r := &rules[i]
		seen[r.ID] = true
		metrics.EvaluationRulesTotal.Inc()

		key := metricKey{r.MerchantID, r.Metric, r.WindowSeconds}
		mv, ok := cache[key]
		if !ok {
			var computeErr error
			mv, computeErr = eng.computeMetric(ctx, r.MerchantID, r.Metric, r.Window())
			if computeErr != nil {
				eng.log.Error("metric computation failed",
					"rule_id", r.ID,
					"merchant_id", r.MerchantID,
					"metric", r.Metric,
					"error", computeErr,
				)
				metrics.EvaluationErrorsTotal.Inc()
				mv = metricValue{}
			}
			cache[key] = mv
		}

		eng.evaluateRule(ctx, r, mv)
	}

	eng.pruneFiring(seen)
	return nil
}

// evaluateRule applies the edge trigger: publish only on the transition
// into the triggering condition.
func (eng *Engine) evaluateRule(ctx context.Context, r *domain.AlertRule, mv metricValue) {
	threshold, _ := r.Threshold.Float64()
	cond := mv.defined && r.Operator.Compare(mv.value, threshold)

	eng.mu.Lock()
	prev := eng.firing[r.ID]
	eng.firing[r.ID] = cond
	eng.mu.Unlock()

	if !cond || prev {
		return
	}

	event := &domain.AlertEvent{
		RuleID:        r.ID,
		MerchantID:    r.MerchantID,
		Metric:        string(r.Metric),
		Operator:      string(r.Operator),
		Threshold:     threshold,
		Value:         mv.value,
		WindowSeconds: r.WindowSeconds,
		TriggeredAt:   eng.now().UTC().Format(time.RFC3339),
		Message: fmt.Sprintf("%s %s %s (value %g over %ds)",
			r.Metric, r.Operator, r.Threshold.String(), mv.value, r.WindowSeconds),
	}

	if err := PublishAlert(ctx, eng.bus, event); err != nil {
		eng.log.Error("alert publish failed",
			"rule_id", r.ID,
			"merchant_id", r.MerchantID,
			"error", err,
		)
		metrics.PublishFailuresTotal.Inc()
		// Keep the firing state: the condition did hold, and re-publishing
		// every cycle until delivery would break once-per-transition.
		return
	}

	eng.log.Info("alert fired",
		"rule_id", r.ID,
		"merchant_id", r.MerchantID,
		"metric", r.Metric,
		"value", mv.value,
		"threshold", threshold,
	)
	metrics.AlertsFiredTotal.Inc()
}

// computeMetric resolves a metric value for one merchant and window.
func (eng *Engine) computeMetric(
	ctx context.Context,
	merchantID string,
	metric domain.MetricName,
	window time.Duration,
) (metricValue, error) {
	switch metric {
	case domain.MetricOrdersPerMin:
		now := eng.now()
		count, err := eng.store.CountOrdersInWindow(ctx, merchantID, now.Add(-window), now)
		if err != nil {
			return metricValue{}, err
		}
		// A quiet window is a real rate of zero, not missing data.
		return metricValue{
			value:   float64(count) / window.Minutes(),
			defined: true,
		}, nil

	case domain.MetricAOV:
		res, err := eng.analytics.RollingAOV(ctx, merchantID, window)
		if err != nil {
			return metricValue{}, err
		}
		if !res.Defined {
			return metricValue{}, nil
		}
		v, _ := res.Value.Float64()
		return metricValue{value: v, defined: true}, nil

	case domain.MetricRFMScoreAvg:
		res, err := eng.analytics.RFMScores(ctx, merchantID)
		if err != nil {
			return metricValue{}, err
		}
		avg, ok := res.AverageTotal()
		if !ok {
			return metricValue{}, nil
		}
		return metricValue{value: avg, defined: true}, nil

	default:
		return metricValue{}, fmt.Errorf("unknown metric %q", metric)
	}
}

// pruneFiring drops state for rules that are gone or inactive.
func (eng *Engine) pruneFiring(seen map[string]bool) {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	for id := range eng.firing {
		if !seen[id] {
			delete(eng.firing, id)
		}
	}
}
