package assignment

import (
	"fooddelivery/internal/pkg/errs"
)

// Status represents the logistics state of a courier assignment.
//
// State transitions:
//
//	Assigned ──> PickedUp ──> Delivered
//	    │            │
//	    └────────────┴──> Cancelled
//
// Transitions are strictly monotonic: delivering before pickup is illegal
// even though the order-side status enforcement is looser, because the
// "one active assignment per order" invariant depends on assignment
// integrity. Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status when a courier is attached to an order.
	Assigned

	// PickedUp indicates the courier collected the order from the restaurant.
	PickedUp

	// Delivered indicates the courier handed the order to the customer. Terminal.
	Delivered

	// Cancelled indicates the assignment was abandoned; a replacement
	// assignment may then be created for the same order. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("assignment status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the assignment occupies its order. Any
// non-cancelled assignment counts: at most one may exist per order at any
// time, and only cancellation frees the slot for a replacement.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == Delivered
}

// PickUp transitions Assigned -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidStateError("assignment", s.String(), PickedUp.String())
	}
	return PickedUp, nil
}

// Deliver transitions PickedUp -> Delivered. Delivering before pickup is
// rejected with an InvalidStateError.
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return Unknown, errs.NewInvalidStateError("assignment", s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions Assigned or PickedUp -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return Unknown, errs.NewInvalidStateError("assignment", s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// StatusFromString parses a status name as stored in the database. The
// comparison is exact.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("assignment status")
}
