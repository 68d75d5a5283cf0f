// Package bus provides the per-merchant alert pub/sub channel. Alerts are
// ephemeral: a publish reaches current subscribers and is gone. There is no
// persistence and no replay.
package bus

import "context"

const topicPrefix = "alerts:merchant:"

// Topic returns the channel name carrying one merchant's alerts.
func Topic(merchantID string) string {
	return topicPrefix + merchantID
}

// TopicPattern matches every merchant's alert channel.
func TopicPattern() string {
	return topicPrefix + "*"
}

// MerchantFromTopic extracts the merchant ID from a channel name. Returns
// false for channels outside the alert namespace.
func MerchantFromTopic(topic string) (string, bool) {
	if len(topic) <= len(topicPrefix) || topic[:len(topicPrefix)] != topicPrefix {
		return "", false
	}
	return topic[len(topicPrefix):], true
}

// Handler receives a raw alert payload for one merchant.
type Handler func(merchantID string, payload []byte)

// Bus publishes alert events to merchant-scoped channels and delivers them
// to subscribers. Implementations must never leak one merchant's events to
// another merchant's handler scope.
type Bus interface {
	// Publish sends payload to the merchant's channel. A publish with no
	// subscribers succeeds and the event is dropped.
	Publish(ctx context.Context, merchantID string, payload []byte) error

	// Subscribe registers a handler for all merchant alert channels and
	// blocks until ctx is cancelled. The handler is called once per
	// delivered message.
	Subscribe(ctx context.Context, handler Handler) error

	// Ping verifies the bus backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}
