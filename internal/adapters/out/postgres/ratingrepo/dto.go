// Package ratingrepo persists customer ratings. A unique index over
// (order_id, role) backs the one-rating-per-pair invariant at the storage
// level.
package ratingrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO is the database representation of a rating.
type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_role"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	SubjectID  uuid.UUID `gorm:"type:uuid;index"`
	Role       string    `gorm:"type:varchar(16);uniqueIndex:idx_ratings_order_role"`
	Score      int
	Comment    string
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to "ratings".
func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		SubjectID:  aggregate.SubjectID().Bytes(),
		Role:       aggregate.Role().String(),
		Score:      aggregate.Score(),
		Comment:    aggregate.Comment(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return nil, err
	}
	role, err := rating.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(
		id, orderID, customerID, subjectID, role, dto.Score, dto.Comment, dto.CreatedAt,
	)
}
