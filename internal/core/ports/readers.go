package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/restaurant"

	"fooddelivery/internal/core/domain/model/kernel"
)

// The reader interfaces expose the records owned by the external CRUD and
// identity collaborators. Absence is converted to an ObjectNotFoundError by
// implementations; the core never sees raw storage absence signals.

// RestaurantReader provides read access to restaurant projections.
type RestaurantReader interface {
	// Get retrieves a restaurant with its active menu items.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant projection with menu items, for
	// the search pipeline.
	GetAll(ctx context.Context) ([]restaurant.Restaurant, error)
}

// CourierReader provides read access to courier projections.
type CourierReader interface {
	// Get retrieves a courier by id.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllFree retrieves couriers without an active assignment.
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)
}

// AddressReader provides read access to customer delivery addresses.
type AddressReader interface {
	// Get retrieves an address by id.
	Get(ctx context.Context, id kernel.UUID) (*customer.Address, error)
}
