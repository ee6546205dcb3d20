package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// PlaceOrderItem is one requested menu item with its quantity. Prices are
// not part of the request: the handler captures them from the restaurant's
// current menu at placement time.
type PlaceOrderItem struct {
	menuItemID kernel.UUID
	quantity   int
}

// NewPlaceOrderItem creates a validated order item request.
func NewPlaceOrderItem(menuItemID kernel.UUID, quantity int) (PlaceOrderItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return PlaceOrderItem{}, err
	}
	if quantity <= 0 {
		return PlaceOrderItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}

	return PlaceOrderItem{menuItemID: menuItemID, quantity: quantity}, nil
}

// MenuItemID returns the requested menu item reference.
func (i PlaceOrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the requested quantity.
func (i PlaceOrderItem) Quantity() int {
	return i.quantity
}

// PlaceOrderCommand represents a customer's request to place a new order
// from a restaurant's menu, delivered to one of the customer's addresses.
//
// Example:
//
//	item, _ := commands.NewPlaceOrderItem(menuItemID, 2)
//	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID,
//	    restaurantID, addressID, []commands.PlaceOrderItem{item})
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	addressID    kernel.UUID
	items        []PlaceOrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. All
// references must be valid UUIDs and at least one item is required.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
	items []PlaceOrderItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setAddressID(addressID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the order is placed with.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// AddressID returns the delivery address reference.
func (c PlaceOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Items returns the requested items.
func (c PlaceOrderCommand) Items() []PlaceOrderItem {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.addressID = id
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for i := range items {
		if err := items[i].menuItemID.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
		if items[i].quantity <= 0 {
			return errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i), items[i].quantity, 1, nil)
		}
	}

	c.items = make([]PlaceOrderItem, len(items))
	copy(c.items, items)
	return nil
}
