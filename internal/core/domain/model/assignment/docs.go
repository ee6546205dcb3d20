// Package assignment contains the CourierAssignment aggregate owned by the
// dispatch flow: the record linking one order to one courier with a strictly
// monotonic Assigned -> PickedUp -> Delivered state machine, and Cancelled as
// the escape hatch that frees an order for reassignment.
package assignment
