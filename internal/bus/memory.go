package bus

import (
	"context"
	"sync"
)

// MemoryBus implements Bus in-process. Useful for tests and single-instance
// deployments without Redis; events never cross process boundaries.
type MemoryBus struct {
	mu     sync.RWMutex
	subs   map[int]Handler
	nextID int
	closed bool
}

// NewMemoryBus creates an in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: map[int]Handler{}}
}

// Publish dispatches payload synchronously to every subscriber. With no
// subscribers the event is dropped.
func (b *MemoryBus) Publish(ctx context.Context, merchantID string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(merchantID, payload)
	}
	return nil
}

// Subscribe registers handler and blocks until ctx is cancelled.
func (b *MemoryBus) Subscribe(ctx context.Context, handler Handler) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return context.Canceled
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = handler
	b.mu.Unlock()

	<-ctx.Done()

	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()

	return ctx.Err()
}

// Ping reports whether the bus accepts events.
func (b *MemoryBus) Ping(_ context.Context) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return context.Canceled
	}
	return nil
}

// Close drops all subscribers.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = map[int]Handler{}
	return nil
}
