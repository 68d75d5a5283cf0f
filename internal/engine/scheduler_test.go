package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderpulse/orderpulse/internal/analytics"
	storeMocks "github.com/orderpulse/orderpulse/internal/store/mocks"
)

func newTestScheduler(t *testing.T, interval time.Duration) *Scheduler {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	svc := analytics.NewService(ms)
	eng := NewEngine(ms, svc, &recordingBus{}, WithLogger(quietLogger()))

	s, err := NewScheduler(eng, interval, quietLogger())
	require.NoError(t, err)
	return s
}

func TestNewScheduler_RegistersCycle(t *testing.T) {
	t.Parallel()

	s := newTestScheduler(t, 15*time.Second)
	assert.Len(t, s.Entries(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	s := newTestScheduler(t, time.Hour)
	s.Start()

	done := s.Stop()
	select {
	case <-done.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
	assert.Equal(t, context.Canceled, done.Err())
}
