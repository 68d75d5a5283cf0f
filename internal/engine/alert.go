package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/orderpulse/orderpulse/internal/bus"
	domain "github.com/orderpulse/orderpulse/pkg/types"
)

// PublishAlert serializes an alert event and publishes it on the owning
// merchant's channel. Delivery is fire-and-forget: subscribers connected at
// publish time receive it, nobody else ever will.
func PublishAlert(ctx context.Context, b bus.Bus, event *domain.AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling alert event: %w", err)
	}

	if err := b.Publish(ctx, event.MerchantID, payload); err != nil {
		return fmt.Errorf("publishing alert event: %w", err)
	}
	return nil
}
