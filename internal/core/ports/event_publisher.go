package ports

import (
	"context"
	"time"
)

// OrderStatusChangedEvent is the integration event emitted whenever an
// order's customer-visible status changes.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderEventPublisher emits order lifecycle events to the message broker.
// Publishing is best-effort from the command handlers' point of view:
// a broker outage is logged, never turned into a command failure.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
