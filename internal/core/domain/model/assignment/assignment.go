package assignment

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment constructor")

// Assignment is the logistics record linking one order to one courier across
// pickup and delivery. An order may accumulate a history of assignments if
// reassigned after cancellation, but at most one non-cancelled assignment
// exists per order at any time; the dispatch flow enforces that invariant
// transactionally at creation.
//
// Assignment status progresses independently of the order's customer-visible
// status. Terminal assignment transitions are mirrored onto the order inside
// the same unit of work by the application layer.
type Assignment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	courierID kernel.UUID

	status      Status
	assignedAt  time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	// version supports optimistic concurrency in the persistence layer.
	version int

	isConstructed bool
}

// NewAssignment creates an assignment in Assigned status with a
// server-assigned assignment timestamp.
func NewAssignment(id, orderID, courierID kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		status:        Assigned,
		assignedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, orderID, courierID kernel.UUID,
	status Status,
	assignedAt time.Time,
	pickedUpAt, deliveredAt *time.Time,
	version int,
) (*Assignment, error) {
	a := &Assignment{
		status:        status,
		assignedAt:    assignedAt,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setCourierID(courierID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the assigned order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// CourierID returns the working courier's identifier.
func (a *Assignment) CourierID() kernel.UUID {
	return a.courierID
}

// Status returns the current logistics state.
func (a *Assignment) Status() Status {
	return a.status
}

// AssignedAt returns the assignment creation timestamp.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// PickedUpAt returns the pickup timestamp, or nil before pickup.
func (a *Assignment) PickedUpAt() *time.Time {
	return a.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (a *Assignment) DeliveredAt() *time.Time {
	return a.deliveredAt
}

// Version returns the optimistic-concurrency version counter.
func (a *Assignment) Version() int {
	return a.version
}

// IsActive reports whether this assignment still occupies its order.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// MarkPickedUp advances Assigned -> PickedUp and stamps the pickup time.
func (a *Assignment) MarkPickedUp() error {
	newStatus, err := a.status.PickUp()
	if err != nil {
		return err
	}

	a.status = newStatus
	now := time.Now().UTC()
	a.pickedUpAt = &now
	return nil
}

// MarkDelivered advances PickedUp -> Delivered and stamps the delivery time.
// Delivering before pickup fails with an InvalidStateError.
func (a *Assignment) MarkDelivered() error {
	newStatus, err := a.status.Deliver()
	if err != nil {
		return err
	}

	a.status = newStatus
	now := time.Now().UTC()
	a.deliveredAt = &now
	return nil
}

// Cancel abandons the assignment, freeing the order for reassignment.
func (a *Assignment) Cancel() error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.courierID = id
	return nil
}
