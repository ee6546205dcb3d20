package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// AssignCourierCommandHandler assigns a named courier to an order.
// The one-active-assignment invariant is enforced with a check-then-insert
// inside the transaction: an existing non-cancelled assignment turns the
// request into a ConflictError.
//
// Example:
//
//	handler := commands.NewAssignCourierCommandHandler(uowFactory, courierReader)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    log.Println("order already dispatched")
//	}
type AssignCourierCommandHandler struct {
	uowFactory DispatchUoWFactory
	couriers   ports.CourierReader
}

// NewAssignCourierCommandHandler creates a handler for explicit courier
// assignment.
func NewAssignCourierCommandHandler(
	uowFactory DispatchUoWFactory,
	couriers ports.CourierReader,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		couriers:   couriers,
	}
}

// Handle processes the assignment command.
// Resolves the order and courier, rejects orders that already have an
// active assignment, then creates the assignment and links the courier to
// the order within a single transaction.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	courier, err := h.couriers.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	_, err = assignmentRepo.GetActiveByOrder(ctx, o.ID())
	switch {
	case err == nil:
		return errs.NewConflictError("orderID", o.ID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	newAssignment, err := assignment.NewAssignment(kernel.NewUUID(), o.ID(), courier.ID)
	if err != nil {
		return err
	}

	if err = o.LinkCourier(courier.ID); err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, newAssignment); err != nil {
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
