package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for courier
// assignment aggregates.
//
// The "at most one non-cancelled assignment per order" invariant is upheld
// here: GetActiveByOrder inside the same transaction as Add gives callers a
// serialized check-then-insert.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment. Implementations
	// guard the write with the aggregate's version; a stale version fails
	// with a ConflictError.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByOrder retrieves the order's current non-cancelled
	// assignment, or an ObjectNotFoundError when the order has none.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetAllByOrder retrieves the order's full assignment history,
	// newest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error)
}
