package amqp

import (
	"context"
	"log/slog"

	"github.com/mmynk/tripmate/internal/metrics"
	"github.com/mmynk/tripmate/internal/storage"
)

// Publisher sends change messages to the broker.
type Publisher interface {
	PublishChange(ctx context.Context, msg *ChangeMessage) error
}

// Subscriber is the change-notification side of storage.Store.
type Subscriber interface {
	Subscribe(collections ...storage.Collection) (<-chan storage.Change, func())
}

// Forward publishes every change from src until ctx is done or src closes
// the subscription. Publish failures are logged and skipped; the next change
// carries the same meaning.
func Forward(ctx context.Context, src Subscriber, pub Publisher) error {
	changes, cancel := src.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if err := pub.PublishChange(ctx, NewChangeMessage(change)); err != nil {
				slog.ErrorContext(ctx, "Failed to forward change", "error", err, "collection", change.Collection)
				continue
			}
			metrics.ObservePublished(string(change.Collection))
		}
	}
}
