package bus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "alerts:merchant:m1", Topic("m1"))
	assert.Equal(t, "alerts:merchant:*", TopicPattern())
}

func TestMerchantFromTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		topic  string
		want   string
		wantOK bool
	}{
		{"valid topic", "alerts:merchant:m1", "m1", true},
		{"uuid merchant", "alerts:merchant:8f14e45f-ceea-4673-9a2f-000000000001", "8f14e45f-ceea-4673-9a2f-000000000001", true},
		{"wrong prefix", "orders:merchant:m1", "", false},
		{"prefix only", "alerts:merchant:", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := MerchantFromTopic(tt.topic)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryBus_PublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	b := NewMemoryBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []string

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = b.Subscribe(ctx, func(merchantID string, payload []byte) {
			mu.Lock()
			got = append(got, merchantID+":"+string(payload))
			mu.Unlock()
		})
	}()

	// Wait for the subscriber to register.
	require.Eventually(t, func() bool {
		b.mu.RLock()
		defer b.mu.RUnlock()
		return len(b.subs) == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, b.Publish(context.Background(), "m1", []byte("hello")))
	require.NoError(t, b.Publish(context.Background(), "m2", []byte("world")))

	mu.Lock()
	assert.Equal(t, []string{"m1:hello", "m2:world"}, got)
	mu.Unlock()

	cancel()
	<-done
}

func TestMemoryBus_PublishWithoutSubscribersDrops(t *testing.T) {
	t.Parallel()

	b := NewMemoryBus()
	assert.NoError(t, b.Publish(context.Background(), "m1", []byte("unseen")))
}

func TestMemoryBus_SubscribeAfterClose(t *testing.T) {
	t.Parallel()

	b := NewMemoryBus()
	require.NoError(t, b.Close())

	err := b.Subscribe(context.Background(), func(string, []byte) {})
	assert.Error(t, err)
}

func TestMemoryBus_CancelledContextPublish(t *testing.T) {
	t.Parallel()

	b := NewMemoryBus()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, b.Publish(ctx, "m1", nil))
}
