// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Implementations guard
	// the write with the aggregate's version: a stale version fails with
	// a ConflictError instead of overwriting a concurrent update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, including its line
	// items. Absence is reported as an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest pending order without a
	// linked courier. Used by the dispatch job to drain the pending queue;
	// cancelling an assignment unlinks the courier and puts the order back
	// in line.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)
}
