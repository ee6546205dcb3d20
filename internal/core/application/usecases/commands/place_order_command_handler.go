package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Validates that every requested item belongs to the restaurant's menu and
// is currently available, that the delivery address belongs to the ordering
// customer, and captures unit prices from the live menu so later price
// changes never affect the order total.
//
// Example:
//
//	handler := commands.NewPlaceOrderCommandHandler(
//	    uowFactory, restaurantReader, addressReader, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	restaurants ports.RestaurantReader
	addresses   ports.AddressReader
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The publisher may be nil when no broker is configured.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantReader,
	addresses ports.AddressReader,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		addresses:   addresses,
		publisher:   publisher,
		logger:      ensureLogger(logger),
	}
}

// Handle processes the order placement command.
// Resolves the restaurant and address, builds line items with captured
// prices, and persists the order in pending status within a transaction.
// The status event is published after commit, best-effort.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	restaurant, err := h.restaurants.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	address, err := h.addresses.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !address.BelongsTo(cmd.CustomerID()) {
		return errs.NewValueIsInvalidError("addressID")
	}

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for i, requested := range cmd.Items() {
		menuItem := restaurant.FindMenuItem(requested.MenuItemID())
		if menuItem == nil {
			return errs.NewValueIsInvalidError(fmt.Sprintf("items[%d].menuItemID", i))
		}
		if !menuItem.Available {
			return errs.NewValueIsInvalidError(fmt.Sprintf("items[%d].menuItemID", i))
		}

		item, err := order.NewLineItem(menuItem.ID, menuItem.Name, requested.Quantity(), menuItem.Price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(), cmd.AddressID(), items)
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, newOrder)

	return nil
}
