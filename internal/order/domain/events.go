package domain

import "context"

// EventPublisher emits order lifecycle events to the message bus.
// Publishing returns an error rather than being fire-and-forget so
// callers can record delivery failures.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, orderID uint, customerName string, itemCount int) error
	PublishOrderStatusChanged(ctx context.Context, orderID uint, status string, restoredStock bool) error
}
