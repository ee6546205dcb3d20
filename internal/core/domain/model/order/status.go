package order

import (
	"fooddelivery/internal/pkg/errs"
)

// Status represents the customer-visible lifecycle state of an order.
// It implements a state machine with an explicit transition table.
//
// State transitions:
//
//	Pending ──> Processing ──> OutForDelivery ──> Delivered
//	   │             │                │
//	   └─────────────┴────────────────┴──> Cancelled
//
// Forward jumps are permitted (an operator may move a Pending order straight
// to Delivered), transitions never regress, and Cancelled is reachable only
// from non-terminal states. Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned on placement. Pending orders
	// are waiting for the restaurant to accept them and for dispatch.
	Pending

	// Processing indicates the restaurant has accepted and is preparing
	// the order.
	Processing

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Processing:     "Processing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Processing:     "Processing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// statusRank orders the forward progression of the delivery flow.
// Cancelled sits outside the progression and is handled separately.
func statusRank() map[Status]int {
	return map[Status]int{
		Pending:        1,
		Processing:     2,
		OutForDelivery: 3,
		Delivered:      4,
	}
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("order status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
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

// CanTransition reports whether moving from s to target is legal.
// Re-issuing the current status is allowed and treated as a no-op by the
// aggregate, so identical status updates stay idempotent for retrying
// callers.
func (s Status) CanTransition(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s == target {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	return statusRank()[target] > statusRank()[s]
}

// Transition returns the target status if the move is legal, or an
// InvalidStateError naming both states otherwise.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransition(target) {
		return Unknown, errs.NewInvalidStateError("order", s.String(), target.String())
	}
	return target, nil
}

// StatusFromString parses a status name as stored in the database or sent by
// operators. The comparison is exact.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("order status")
}
