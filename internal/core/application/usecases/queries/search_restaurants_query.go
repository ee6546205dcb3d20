// Package queries contains read-only operations over the system's data.
// Implements the Query side of the CQRS architecture: each query is a
// validated value object with a handler reading through gorm directly,
// bypassing the aggregate repositories.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/guard"
)

var ErrSearchRestaurantsQueryIsNotConstructed = errors.New(
	"SearchRestaurantsQuery must be created via NewSearchRestaurantsQuery constructor",
)

// SearchRestaurantsQuery represents a multi-criteria restaurant search.
// Every criterion is optional; an absent criterion applies no filter.
//
// Example:
//
//	criteria := services.SearchCriteria{CuisineType: "Thai", Origin: &origin, MaxDistanceKm: 5}
//	query, err := queries.NewSearchRestaurantsQuery(criteria)
//	if err != nil {
//	    return err
//	}
//	results, err := handler.Handle(ctx, query)
type SearchRestaurantsQuery struct {
	criteria services.SearchCriteria

	guard guard.ConstructorGuard
}

// NewSearchRestaurantsQuery creates a restaurant search query. The criteria
// are validated up front so malformed filters fail before any data is read.
func NewSearchRestaurantsQuery(criteria services.SearchCriteria) (SearchRestaurantsQuery, error) {
	if err := criteria.Validate(); err != nil {
		return SearchRestaurantsQuery{}, err
	}

	return SearchRestaurantsQuery{
		criteria: criteria,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrSearchRestaurantsQueryIsNotConstructed)
}

// Criteria returns the search criteria.
func (q SearchRestaurantsQuery) Criteria() services.SearchCriteria {
	return q.criteria
}

// SearchRestaurantsQueryResponse is one search hit. DistanceKm is set when
// the requester supplied an origin and the restaurant has stored
// coordinates.
type SearchRestaurantsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	CuisineType   string
	City          string
	State         string
	Country       string
	AverageRating float64
	DistanceKm    *float64
}
