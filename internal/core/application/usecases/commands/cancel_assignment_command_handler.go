package commands

import (
	"context"
)

// CancelAssignmentCommandHandler cancels a courier assignment and unlinks
// the courier from the order in the same transaction. The order itself
// keeps its lifecycle status and becomes eligible for dispatch again.
type CancelAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCancelAssignmentCommandHandler creates a handler for assignment
// cancellation.
func NewCancelAssignmentCommandHandler(uowFactory DispatchUoWFactory) CancelAssignmentCommandHandler {
	return CancelAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelAssignmentCommandHandler) Handle(ctx context.Context, cmd CancelAssignmentCommand) error {
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

	if err = a.Cancel(); err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, a.OrderID())
	if err != nil {
		return err
	}
	o.UnlinkCourier()

	if err = assignmentRepo.Update(ctx, a); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
