package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAverageRatingQueryIsNotConstructed = errors.New(
	"GetAverageRatingQuery must be created via NewGetAverageRatingQuery constructor",
)

// GetAverageRatingQuery retrieves the average rating score of a restaurant
// or courier.
type GetAverageRatingQuery struct {
	subjectID kernel.UUID
	role      rating.SubjectRole

	guard guard.ConstructorGuard
}

// NewGetAverageRatingQuery creates an average rating query.
func NewGetAverageRatingQuery(subjectID kernel.UUID, role rating.SubjectRole) (GetAverageRatingQuery, error) {
	if err := subjectID.Validate(); err != nil {
		return GetAverageRatingQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return GetAverageRatingQuery{}, err
	}

	return GetAverageRatingQuery{
		subjectID: subjectID,
		role:      role,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAverageRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetAverageRatingQueryIsNotConstructed)
}

// SubjectID returns the rated restaurant or courier.
func (q GetAverageRatingQuery) SubjectID() kernel.UUID {
	return q.subjectID
}

// Role returns which side of the order the subject played.
func (q GetAverageRatingQuery) Role() rating.SubjectRole {
	return q.role
}

// GetAverageRatingQueryResponse carries the average score. Average is 0
// when the subject has no ratings yet, so it is always displayable.
type GetAverageRatingQueryResponse struct {
	SubjectID kernel.UUID
	Role      rating.SubjectRole
	Average   float64
}
