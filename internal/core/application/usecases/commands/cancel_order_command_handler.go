package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CancelOrderCommandHandler handles customer-initiated order cancellation.
// Only the order's owner may cancel, and only before delivery. When the
// order has an active courier assignment the assignment is cancelled in the
// same transaction, so the order and its assignment never disagree about
// whether a courier is on the way.
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The publisher may be nil when no broker is configured.
func NewCancelOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     ensureLogger(logger),
	}
}

// Handle processes the cancellation command.
// Verifies ownership, cancels the order, cancels any active assignment and
// unlinks the courier, all within one transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	assignmentRepo := uow.AssignmentRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewForbiddenError("order belongs to another customer")
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	active, err := assignmentRepo.GetActiveByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// nothing dispatched yet
	case err != nil:
		return err
	default:
		if err = active.Cancel(); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, active); err != nil {
			return err
		}
		o.UnlinkCourier()
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, o)

	return nil
}
