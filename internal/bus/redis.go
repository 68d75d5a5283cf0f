package bus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/orderpulse/orderpulse/pkg/logger"
)

const connectTimeout = 5 * time.Second

// RedisBus implements Bus on Redis pub/sub. Every process instance can
// publish and subscribe, so alerts reach subscribers on any instance.
type RedisBus struct {
	client *redis.Client
	log    *slog.Logger
}

// NewRedisBus connects to Redis using a redis:// URL and verifies the
// connection with a ping.
func NewRedisBus(url string, log *slog.Logger) (*RedisBus, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &RedisBus{
		client: client,
		log:    logger.Component(log, "bus"),
	}, nil
}

// Publish sends payload on the merchant's alert channel.
func (b *RedisBus) Publish(ctx context.Context, merchantID string, payload []byte) error {
	if err := b.client.Publish(ctx, Topic(merchantID), payload).Err(); err != nil {
		return fmt.Errorf("publishing alert: %w", err)
	}
	return nil
}

// Subscribe pattern-subscribes to all merchant alert channels and dispatches
// messages to handler until ctx is cancelled.
func (b *RedisBus) Subscribe(ctx context.Context, handler Handler) error {
	sub := b.client.PSubscribe(ctx, TopicPattern())
	defer sub.Close() //nolint:errcheck // best-effort cleanup

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			merchantID, ok := MerchantFromTopic(msg.Channel)
			if !ok {
				b.log.Warn("message on unexpected channel", "channel", msg.Channel)
				continue
			}
			handler(merchantID, []byte(msg.Payload))
		}
	}
}

// Ping verifies the Redis connection is alive.
func (b *RedisBus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close shuts down the Redis client.
func (b *RedisBus) Close() error {
	return b.client.Close()
}
