// Package kafka publishes order lifecycle events to the message broker.
// Consumers are notification and analytics services; handlers treat publish
// failures as log-and-continue, so a broker outage never fails a command.
package kafka

import (
	"context"
	"encoding/json"

	"fooddelivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher implements ports.OrderEventPublisher on a kafka.Writer.
// Messages are keyed by order id so all events for one order land on the
// same partition in order.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher wraps a configured kafka.Writer.
func NewOrderEventPublisher(writer *kafka.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// PublishStatusChanged emits one status-changed event as JSON.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
