package engine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orderpulse/orderpulse/internal/analytics"
	"github.com/orderpulse/orderpulse/internal/bus"
	storeMocks "github.com/orderpulse/orderpulse/internal/store/mocks"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingBus captures published events in order.
type recordingBus struct {
	mu        sync.Mutex
	published []*domain.AlertEvent
	err       error
}

func (b *recordingBus) Publish(_ context.Context, merchantID string, payload []byte) error {
	if b.err != nil {
		return b.err
	}
	var ev domain.AlertEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return err
	}
	if ev.MerchantID != merchantID {
		return errors.New("payload merchant does not match channel")
	}
	b.mu.Lock()
	b.published = append(b.published, &ev)
	b.mu.Unlock()
	return nil
}

func (b *recordingBus) Subscribe(ctx context.Context, _ bus.Handler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (b *recordingBus) Ping(_ context.Context) error { return nil }

func (b *recordingBus) Close() error { return nil }

func (b *recordingBus) events() []*domain.AlertEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*domain.AlertEvent(nil), b.published...)
}

func newTestEngine(t *testing.T) (*Engine, *storeMocks.MockStore, *recordingBus) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	rb := &recordingBus{}
	svc := analytics.NewService(ms, analytics.WithClock(func() time.Time { return testNow }))
	eng := NewEngine(ms, svc, rb,
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return testNow }),
	)
	return eng, ms, rb
}

func ordersPerMinRule(id, merchantID string, threshold int64) domain.AlertRule {
	return domain.AlertRule{
		ID:            id,
		MerchantID:    merchantID,
		Metric:        domain.MetricOrdersPerMin,
		Operator:      domain.OpGreater,
		Threshold:     decimal.NewFromInt(threshold),
		WindowSeconds: 60,
		IsActive:      true,
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	rb := &recordingBus{}
	svc := analytics.NewService(ms)

	eng := NewEngine(ms, svc, rb)

	assert.Same(t, svc, eng.analytics)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.now)
	assert.NotNil(t, eng.firing)
}

func TestRunCycle_FiresOnceOnTransition(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	rule := ordersPerMinRule("r1", "m1", 5)
	ms.EXPECT().ListActiveRules(mock.Anything).Return([]domain.AlertRule{rule}, nil).Times(3)
	// Six orders in a 60s window: rate 6/min, over the threshold, and the
	// condition holds across three consecutive cycles.
	ms.EXPECT().
		CountOrdersInWindow(mock.Anything, "m1", testNow.Add(-60*time.Second), testNow).
		Return(6, nil).
		Times(3)

	for range 3 {
		require.NoError(t, eng.RunCycle(ctx))
	}

	events := rb.events()
	require.Len(t, events, 1, "a held condition publishes exactly once")

	ev := events[0]
	assert.Equal(t, "r1", ev.RuleID)
	assert.Equal(t, "m1", ev.MerchantID)
	assert.Equal(t, "orders_per_min", ev.Metric)
	assert.Equal(t, ">", ev.Operator)
	assert.InDelta(t, 5.0, ev.Threshold, 0.001)
	assert.InDelta(t, 6.0, ev.Value, 0.001)
	assert.Equal(t, 60, ev.WindowSeconds)
	assert.Equal(t, "2026-06-15T12:00:00Z", ev.TriggeredAt)
	assert.NotEmpty(t, ev.Message)
}

func TestRunCycle_RearmsAfterReset(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	rule := ordersPerMinRule("r1", "m1", 5)
	ms.EXPECT().ListActiveRules(mock.Anything).Return([]domain.AlertRule{rule}, nil).Times(3)

	// Hot, quiet, hot again.
	counts := []int{6, 2, 8}
	idx := 0
	ms.EXPECT().
		CountOrdersInWindow(mock.Anything, "m1", mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, time.Time, time.Time) (int, error) {
			n := counts[idx]
			idx++
			return n, nil
		}).
		Times(3)

	for range 3 {
		require.NoError(t, eng.RunCycle(ctx))
	}

	events := rb.events()
	require.Len(t, events, 2)
	assert.InDelta(t, 6.0, events[0].Value, 0.001)
	assert.InDelta(t, 8.0, events[1].Value, 0.001)
}

func TestRunCycle_SharedMetricComputedOnce(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	// Two rules on the same merchant, metric and window with different
	// thresholds share one computation.
	rules := []domain.AlertRule{
		ordersPerMinRule("r1", "m1", 5),
		ordersPerMinRule("r2", "m1", 3),
	}
	ms.EXPECT().ListActiveRules(mock.Anything).Return(rules, nil).Once()
	ms.EXPECT().
		CountOrdersInWindow(mock.Anything, "m1", testNow.Add(-60*time.Second), testNow).
		Return(6, nil).
		Once()

	require.NoError(t, eng.RunCycle(ctx))
	assert.Len(t, rb.events(), 2)
}

func TestRunCycle_MerchantIsolation(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	rules := []domain.AlertRule{
		ordersPerMinRule("r1", "m1", 5),
		ordersPerMinRule("r2", "m2", 5),
	}
	ms.EXPECT().ListActiveRules(mock.Anything).Return(rules, nil).Once()
	ms.EXPECT().CountOrdersInWindow(mock.Anything, "m1", mock.Anything, mock.Anything).Return(10, nil).Once()
	ms.EXPECT().CountOrdersInWindow(mock.Anything, "m2", mock.Anything, mock.Anything).Return(0, nil).Once()

	require.NoError(t, eng.RunCycle(ctx))

	events := rb.events()
	require.Len(t, events, 1)
	assert.Equal(t, "m1", events[0].MerchantID)
	assert.Equal(t, "r1", events[0].RuleID)
}

func TestRunCycle_UndefinedMetricNeverFires(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	// An AOV rule with "<" would trivially fire on a zero value; an empty
	// window is undefined instead and must stay quiet.
	rule := domain.AlertRule{
		ID:            "r1",
		MerchantID:    "m1",
		Metric:        domain.MetricAOV,
		Operator:      domain.OpLess,
		Threshold:     decimal.NewFromInt(100),
		WindowSeconds: 3600,
		IsActive:      true,
	}
	ms.EXPECT().ListActiveRules(mock.Anything).Return([]domain.AlertRule{rule}, nil).Once()
	ms.EXPECT().
		SumOrdersInWindow(mock.Anything, "m1", mock.Anything, mock.Anything).
		Return("0", 0, nil).
		Once()

	require.NoError(t, eng.RunCycle(ctx))
	assert.Empty(t, rb.events())
}

func TestRunCycle_RuleErrorIsIsolated(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	rules := []domain.AlertRule{
		ordersPerMinRule("r1", "m1", 5),
		ordersPerMinRule("r2", "m2", 5),
	}
	ms.EXPECT().ListActiveRules(mock.Anything).Return(rules, nil).Once()
	ms.EXPECT().
		CountOrdersInWindow(mock.Anything, "m1", mock.Anything, mock.Anything).
		Return(0, errors.New("connection reset")).
		Once()
	ms.EXPECT().CountOrdersInWindow(mock.Anything, "m2", mock.Anything, mock.Anything).Return(9, nil).Once()

	require.NoError(t, eng.RunCycle(ctx))

	events := rb.events()
	require.Len(t, events, 1)
	assert.Equal(t, "r2", events[0].RuleID)
}

func TestRunCycle_PublishFailureKeepsFiringState(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	rule := ordersPerMinRule("r1", "m1", 5)
	ms.EXPECT().ListActiveRules(mock.Anything).Return([]domain.AlertRule{rule}, nil).Times(2)
	ms.EXPECT().CountOrdersInWindow(mock.Anything, "m1", mock.Anything, mock.Anything).Return(6, nil).Times(2)

	rb.err = errors.New("redis down")
	require.NoError(t, eng.RunCycle(ctx))

	// The condition held even though publishing failed; recovery must not
	// produce a duplicate event for the same transition.
	rb.err = nil
	require.NoError(t, eng.RunCycle(ctx))
	assert.Empty(t, rb.events())
}

func TestRunCycle_PrunedRuleCanFireAgain(t *testing.T) {
	t.Parallel()

	eng, ms, rb := newTestEngine(t)
	ctx := context.Background()

	rule := ordersPerMinRule("r1", "m1", 5)

	// Cycle 1: rule fires. Cycle 2: rule deactivated. Cycle 3: rule is
	// back and still hot, which is a fresh transition.
	ms.EXPECT().ListActiveRules(mock.Anything).Return([]domain.AlertRule{rule}, nil).Once()
	ms.EXPECT().CountOrdersInWindow(mock.Anything, "m1", mock.Anything, mock.Anything).Return(6, nil).Once()
	require.NoError(t, eng.RunCycle(ctx))

	ms.EXPECT().ListActiveRules(mock.Anything).Return(nil, nil).Once()
	require.NoError(t, eng.RunCycle(ctx))

	ms.EXPECT().ListActiveRules(mock.Anything).Return([]domain.AlertRule{rule}, nil).Once()
	ms.EXPECT().CountOrdersInWindow(mock.Anything, "m1", mock.Anything, mock.Anything).Return(6, nil).Once()
	require.NoError(t, eng.RunCycle(ctx))

	assert.Len(t, rb.events(), 2)
}

func TestRunCycle_ListRulesError(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	ms.EXPECT().ListActiveRules(mock.Anything).Return(nil, errors.New("down")).Once()

	err := eng.RunCycle(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing active rules")
}

func TestPublishAlert_MarshalsWireShape(t *testing.T) {
	t.Parallel()

	rb := &recordingBus{}
	event := &domain.AlertEvent{
		RuleID:        "r1",
		MerchantID:    "m1",
		Metric:        "aov",
		Operator:      ">=",
		Threshold:     50,
		Value:         97.75,
		WindowSeconds: 86400,
		TriggeredAt:   "2026-06-15T12:00:00Z",
	}

	require.NoError(t, PublishAlert(context.Background(), rb, event))

	events := rb.events()
	require.Len(t, events, 1)
	assert.Equal(t, event, events[0])
}
