package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/guard"
)

var ErrCanRateQueryIsNotConstructed = errors.New(
	"CanRateQuery must be created via NewCanRateQuery constructor",
)

// CanRateQuery asks whether a customer may currently rate one side of an
// order. Lets clients show or hide the rating control without attempting
// the write.
type CanRateQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID
	role       rating.SubjectRole

	guard guard.ConstructorGuard
}

// NewCanRateQuery creates a rating eligibility query.
func NewCanRateQuery(orderID, customerID kernel.UUID, role rating.SubjectRole) (CanRateQuery, error) {
	if err := orderID.Validate(); err != nil {
		return CanRateQuery{}, err
	}
	if err := customerID.Validate(); err != nil {
		return CanRateQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return CanRateQuery{}, err
	}

	return CanRateQuery{
		orderID:    orderID,
		customerID: customerID,
		role:       role,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CanRateQuery) Validate() error {
	return q.guard.Validate(ErrCanRateQueryIsNotConstructed)
}

// OrderID returns the order in question.
func (q CanRateQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the prospective rater.
func (q CanRateQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Role returns which side of the order would be rated.
func (q CanRateQuery) Role() rating.SubjectRole {
	return q.role
}

// CanRateQueryResponse reports eligibility. Reason is empty when Allowed,
// otherwise a short human-readable explanation.
type CanRateQueryResponse struct {
	Allowed bool
	Reason  string
}
