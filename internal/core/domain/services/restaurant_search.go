package services

import (
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

// SearchCriteria is a multi-criteria restaurant query. Every field is
// optional; an absent field applies no filter.
type SearchCriteria struct {
	// Name filters by case-insensitive substring match.
	Name string
	// CuisineType filters by exact cuisine match.
	CuisineType string
	// City, State and Country filter by exact match against the
	// restaurant's address when present.
	City    string
	State   string
	Country string

	// MinPrice and MaxPrice bound the price band. A restaurant qualifies
	// when any menu item's price falls in the band.
	MinPrice *kernel.Money
	MaxPrice *kernel.Money

	// MaxDeliveryTimeMin is an advisory hint. It is carried through but not
	// enforced as a hard filter.
	MaxDeliveryTimeMin int

	// Origin is the requester's position. When set, distances are computed
	// and attached to every surviving result.
	Origin *kernel.GeoPoint
	// MaxDistanceKm bounds results by distance from Origin. Zero means
	// unbounded. Restaurants without stored coordinates are dropped from
	// any distance-bounded query.
	MaxDistanceKm float64
}

// Validate rejects malformed numeric filters.
func (c SearchCriteria) Validate() error {
	if c.MinPrice != nil && c.MaxPrice != nil &&
		c.MinPrice.Amount().GreaterThan(c.MaxPrice.Amount()) {
		return errs.NewValueIsInvalidError("price band: minPrice is greater than maxPrice")
	}
	if c.MaxDistanceKm < 0 {
		return errs.NewValueIsInvalidError("maxDistanceKm must not be negative")
	}
	if c.MaxDeliveryTimeMin < 0 {
		return errs.NewValueIsInvalidError("maxDeliveryTimeMin must not be negative")
	}
	return nil
}

// RestaurantResult is one search hit. DistanceKm is set when the requester's
// position was supplied and the restaurant has stored coordinates, so
// callers can sort by proximity.
type RestaurantResult struct {
	Restaurant restaurant.Restaurant
	DistanceKm *float64
}

// RestaurantSearch filters and ranks restaurant projections against a
// multi-criteria query. It is a pure domain service: the caller loads the
// candidate projections, the service applies the filter pipeline.
//
// Filters run cheapest first: exact/substring text filters, then the price
// band, then the geo filter. An empty result set is a normal outcome.
type RestaurantSearch struct{}

// NewRestaurantSearch creates a RestaurantSearch.
func NewRestaurantSearch() RestaurantSearch {
	return RestaurantSearch{}
}

// Search applies the criteria to the candidates and returns the surviving
// results in the candidates' original order. Ties in distance keep insertion
// order; no further ranking is imposed.
func (s RestaurantSearch) Search(
	criteria SearchCriteria,
	candidates []restaurant.Restaurant,
) ([]RestaurantResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	results := make([]RestaurantResult, 0, len(candidates))
	for _, r := range candidates {
		if !matchesText(criteria, r) {
			continue
		}
		if !matchesPriceBand(criteria, r) {
			continue
		}

		result := RestaurantResult{Restaurant: r}
		if criteria.Origin != nil {
			dist := kernel.DistanceKm(criteria.Origin, r.Location)
			if criteria.MaxDistanceKm > 0 {
				// The unknown sentinel exceeds any real bound.
				if dist == kernel.UnknownDistance || dist > criteria.MaxDistanceKm {
					continue
				}
			}
			if dist != kernel.UnknownDistance {
				result.DistanceKm = &dist
			}
		}

		results = append(results, result)
	}

	return results, nil
}

func matchesText(c SearchCriteria, r restaurant.Restaurant) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(c.Name)) {
		return false
	}
	if c.CuisineType != "" && r.CuisineType != c.CuisineType {
		return false
	}
	if c.City != "" && r.City != c.City {
		return false
	}
	if c.State != "" && r.State != c.State {
		return false
	}
	if c.Country != "" && r.Country != c.Country {
		return false
	}
	return true
}

func matchesPriceBand(c SearchCriteria, r restaurant.Restaurant) bool {
	if c.MinPrice == nil && c.MaxPrice == nil {
		return true
	}

	minPrice := kernel.ZeroMoney()
	if c.MinPrice != nil {
		minPrice = *c.MinPrice
	}
	if c.MaxPrice != nil {
		return r.HasMenuItemInPriceBand(minPrice, *c.MaxPrice)
	}

	for _, item := range r.MenuItems {
		if item.Price.Amount().GreaterThanOrEqual(minPrice.Amount()) {
			return true
		}
	}
	return false
}
