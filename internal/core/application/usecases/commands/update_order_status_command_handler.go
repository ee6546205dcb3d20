package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies operator-driven status changes to
// an order. The order aggregate enforces the transition rules; the handler
// owns the transaction and emits the status event when the status actually
// changed.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// updates. The publisher may be nil when no broker is configured.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     ensureLogger(logger),
	}
}

// Handle processes the status update command.
// Loads the order, applies the transition, and persists the change.
// A same-status request commits without publishing an event.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := o.Status()
	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if previous != o.Status() {
		publishStatusChanged(ctx, h.publisher, h.logger, o)
	}

	return nil
}
