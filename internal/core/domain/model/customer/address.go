// Package customer holds read-only customer-side projections. Customer
// profiles and addresses are owned by the external CRUD collaborator; the
// core reads addresses only to validate that a delivery address belongs to
// the ordering customer.
package customer

import (
	"fooddelivery/internal/core/domain/model/kernel"
)

// Address is the projection of one delivery address record.
type Address struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Street     string
	City       string
	State      string
	Country    string
	Location   *kernel.GeoPoint
}

// BelongsTo reports whether the address is owned by the given customer.
func (a *Address) BelongsTo(customerID kernel.UUID) bool {
	return a.CustomerID.IsEqual(customerID)
}
