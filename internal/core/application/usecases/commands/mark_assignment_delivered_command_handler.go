package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// MarkAssignmentDeliveredCommandHandler completes a courier assignment.
// The order is moved to delivered inside the same transaction as the
// assignment, keeping the two state machines consistent. Delivery is the
// point after which ratings become possible and cancellation is rejected.
type MarkAssignmentDeliveredCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewMarkAssignmentDeliveredCommandHandler creates a handler for delivery
// notifications. The publisher may be nil when no broker is configured.
func NewMarkAssignmentDeliveredCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) MarkAssignmentDeliveredCommandHandler {
	return MarkAssignmentDeliveredCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     ensureLogger(logger),
	}
}

// Handle processes the delivery command.
// Marks the assignment delivered, then delivers the linked order in the
// same transaction. The status event is published after commit.
func (h MarkAssignmentDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAssignmentDeliveredCommand,
) error {
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

	a, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if err = a.MarkDelivered(); err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, a.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(order.Delivered); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, a); err != nil {
		return err
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
