package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for ratings.
type RatingRepository interface {
	// Add persists a new rating.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// GetByOrderAndRole retrieves the rating for an (order, role) pair, or
	// an ObjectNotFoundError when none exists. Exactly one rating may exist
	// per pair.
	GetByOrderAndRole(ctx context.Context, orderID kernel.UUID, role rating.SubjectRole) (*rating.Rating, error)

	// AverageForSubject computes the arithmetic mean of all rating scores
	// targeting the subject under the given role. Returns 0 when no
	// ratings exist, so the value is always displayable.
	AverageForSubject(ctx context.Context, subjectID kernel.UUID, role rating.SubjectRole) (float64, error)
}
