package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrNoOrderFound        = errors.New("no order found")
)

// DispatchPendingOrderCommandHandler orchestrates automatic courier
// dispatch. Finds the oldest pending order, ranks free couriers by distance
// to the order's restaurant, and creates the assignment transactionally.
//
// Example:
//
//	handler := commands.NewDispatchPendingOrderCommandHandler(
//	    uowFactory, restaurantReader, courierReader)
//	err := handler.Handle(ctx, commands.NewDispatchPendingOrderCommand())
//	switch {
//	case errors.Is(err, commands.ErrNoOrderFound):
//	    log.Println("no pending orders")
//	case errors.Is(err, commands.ErrNoFreeCouriersFound):
//	    log.Println("all couriers are busy")
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchPendingOrderCommandHandler struct {
	uowFactory  DispatchUoWFactory
	restaurants ports.RestaurantReader
	couriers    ports.CourierReader
}

// NewDispatchPendingOrderCommandHandler creates a handler for the dispatch
// cycle. Requires readers for restaurant pickup locations and free couriers.
func NewDispatchPendingOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	restaurants ports.RestaurantReader,
	couriers ports.CourierReader,
) DispatchPendingOrderCommandHandler {
	return DispatchPendingOrderCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		couriers:    couriers,
	}
}

// Handle processes one dispatch cycle.
// Returns ErrNoOrderFound when the pending queue is empty and
// ErrNoFreeCouriersFound when every courier is busy; both are expected
// outcomes for the polling job, not failures.
func (h DispatchPendingOrderCommandHandler) Handle(ctx context.Context, cmd DispatchPendingOrderCommand) error {
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

	o, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	restaurant, err := h.restaurants.Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	freeCouriers, err := h.couriers.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(freeCouriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	picked, err := services.NewCourierDispatcher().Dispatch(o, restaurant.Location, freeCouriers)
	if err != nil {
		return err
	}

	newAssignment, err := assignment.NewAssignment(kernel.NewUUID(), o.ID(), picked.ID)
	if err != nil {
		return err
	}

	if err = o.LinkCourier(picked.ID); err != nil {
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
