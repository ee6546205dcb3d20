package commands

import (
	"context"
)

// MarkAssignmentPickedUpCommandHandler records the pickup milestone on an
// assignment. The assignment aggregate rejects pickups that arrive out of
// order, so a delivered or cancelled assignment cannot regress.
type MarkAssignmentPickedUpCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewMarkAssignmentPickedUpCommandHandler creates a handler for pickup
// notifications.
func NewMarkAssignmentPickedUpCommandHandler(uowFactory AssignmentUoWFactory) MarkAssignmentPickedUpCommandHandler {
	return MarkAssignmentPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
func (h MarkAssignmentPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkAssignmentPickedUpCommand) error {
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

	assignmentRepo := uow.AssignmentRepository()

	a, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if err = a.MarkPickedUp(); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, a); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
