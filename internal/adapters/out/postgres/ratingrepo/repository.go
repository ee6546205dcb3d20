package ratingrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating. A duplicate (order, role) pair violates the
// unique index and is reported as a ConflictError, backing the command
// layer's check-then-insert against races.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("rating", aggregate.OrderID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderAndRole retrieves the rating for an (order, role) pair.
func (r *GormRatingRepository) GetByOrderAndRole(
	ctx context.Context,
	orderID kernel.UUID,
	role rating.SubjectRole,
) (*rating.Rating, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND role = ?", orderID.Bytes(), role.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AverageForSubject computes the mean score for the subject under the
// given role, 0 when no ratings exist.
func (r *GormRatingRepository) AverageForSubject(
	ctx context.Context,
	subjectID kernel.UUID,
	role rating.SubjectRole,
) (float64, error) {
	if err := subjectID.Validate(); err != nil {
		return 0, err
	}
	if err := role.Validate(); err != nil {
		return 0, err
	}

	var average float64
	err := r.db.WithContext(ctx).Model(&RatingDTO{}).
		Select("COALESCE(AVG(score), 0)").
		Where("subject_id = ? AND role = ?", subjectID.Bytes(), role.String()).
		Scan(&average).Error
	if err != nil {
		return 0, err
	}

	return average, nil
}
