package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
)

// RatingCache fronts the rating average with a fast read path. Entries are
// invalidated on every rating write, so a cached value is never stale longer
// than its TTL under lost invalidations.
type RatingCache interface {
	// GetAverage returns the cached average and whether the entry exists.
	// A cache failure is returned as an error and treated as a miss by
	// callers.
	GetAverage(ctx context.Context, subjectID kernel.UUID, role rating.SubjectRole) (float64, bool, error)

	// SetAverage stores the average under the cache TTL.
	SetAverage(ctx context.Context, subjectID kernel.UUID, role rating.SubjectRole, avg float64) error

	// Invalidate drops the cached average for the subject.
	Invalidate(ctx context.Context, subjectID kernel.UUID, role rating.SubjectRole) error
}
