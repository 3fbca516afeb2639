package ports

import (
	"context"
	"time"
)

// StatusChangedEvent is published after a transition commits, so downstream
// consumers (notifications, analytics) learn about shipment progress without
// polling.
type StatusChangedEvent struct {
	OrderID        string    `json:"order_id"`
	TrackingNumber string    `json:"tracking_number"`
	FromStatus     string    `json:"from_status"`
	ToStatus       string    `json:"to_status"`
	Location       string    `json:"location"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher publishes domain events to a message broker.
// Publishing is best effort and happens only after the owning transaction has
// committed; a publish failure is logged by the caller, never surfaced to the
// client and never able to undo a committed transition.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error

	// Close releases broker resources.
	Close() error
}
