package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer's food order. It owns the
// ordered line items, the computed total, and the customer-visible status,
// and enforces status-transition legality.
//
// Invariants:
//   - Line items are immutable after placement; cancel-and-replace is the
//     only way to change them.
//   - The total always equals the sum of captured line-item subtotals.
//   - Status transitions follow the table in Status and never regress; the
//     only exit from the forward flow is an explicit cancellation.
//   - The delivered timestamp is set exactly when the order first reaches
//     Delivered.
//
// The courier link mirrors the active courier assignment. It is established
// by the dispatch flow, not by the order's own transitions.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	// restaurantID references the restaurant the order was placed against.
	restaurantID kernel.UUID
	// addressID references a delivery address owned by the ordering customer.
	addressID kernel.UUID
	courierID *kernel.UUID

	items []LineItem
	total kernel.Money

	status      Status
	createdAt   time.Time
	deliveredAt *time.Time

	// version supports optimistic concurrency in the persistence layer.
	version int

	isConstructed bool
}

// NewOrder creates an order in Pending status with a server-assigned
// creation timestamp. The total is computed as the sum of line-item
// subtotals; prices inside items were captured by the caller at placement
// time.
//
// Example:
//
//	item, _ := order.NewLineItem(menuItemID, "Margherita Pizza", 2, price)
//	o, err := order.NewOrder(order.NewUUID(), customerID, restaurantID, addressID,
//	    []order.LineItem{item})
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddressID(addressID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// placement-time validation of references. The stored total is recomputed
// from the items to keep the total invariant even against hand-edited rows.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
	courierID *kernel.UUID,
	items []LineItem,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		status:        status,
		courierID:     courierID,
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddressID(addressID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// AddressID returns the delivery address identifier.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Courier returns the linked courier's ID, or nil while unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total captured at placement time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current customer-visible status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the server-assigned placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp, or nil if not yet delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Version returns the optimistic-concurrency version counter.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus moves the order to the target status through the transition
// table. Re-issuing the current status is a no-op, so identical updates are
// idempotent. Reaching Delivered stamps the delivered timestamp once.
func (o *Order) ChangeStatus(target Status) error {
	if o.status == target {
		return nil
	}

	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered && o.deliveredAt == nil {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}
	return nil
}

// Cancel moves the order to Cancelled. Cancellation of a Delivered order is
// rejected; cancelling an already Cancelled order is a no-op.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// LinkCourier records the courier working the order's active assignment.
// The link can only be established while the order is not terminal.
func (o *Order) LinkCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), o.status.String())
	}
	o.courierID = &courierID
	return nil
}

// UnlinkCourier drops the courier link after its assignment was cancelled,
// freeing the order for reassignment.
func (o *Order) UnlinkCourier() {
	o.courierID = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("addressId", err)
	}
	o.addressID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
