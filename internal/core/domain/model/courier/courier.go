// Package courier holds the read-only courier projection consumed by the
// dispatch flow. Courier records are owned by the external identity/CRUD
// collaborator; this core reads them to validate references and to rank
// free couriers by proximity.
package courier

import (
	"fooddelivery/internal/core/domain/model/kernel"
)

// Courier is the projection of a courier record. Location is the courier's
// last reported position, nil when the courier has never reported one;
// couriers with unknown positions rank last in proximity-based dispatch.
type Courier struct {
	ID       kernel.UUID
	Name     string
	Location *kernel.GeoPoint
}
