package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// publishStatusChanged emits the order status integration event.
// Best-effort: a broker failure is logged and swallowed so the already
// committed command never reports failure because of messaging.
func publishStatusChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	o *order.Order,
) {
	if publisher == nil {
		return
	}

	event := ports.OrderStatusChangedEvent{
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Status:     o.Status().String(),
		Timestamp:  time.Now().UTC(),
	}

	if err := publisher.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("failed to publish order status event",
			slog.String("order_id", event.OrderID),
			slog.String("status", event.Status),
			slog.Any("error", err),
		)
	}
}

func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
