package restaurant

import (
	"fooddelivery/internal/core/domain/model/kernel"
)

// Restaurant is the search projection of a restaurant record. The record
// itself is owned by the excluded CRUD layer; this core only reads it, for
// placement validation and for geolocation-scored search.
//
// Location is nil when the restaurant has no stored coordinates, which
// excludes it from distance-bounded queries via the unknown-distance
// sentinel.
type Restaurant struct {
	ID          kernel.UUID
	Name        string
	CuisineType string

	City    string
	State   string
	Country string

	Location        *kernel.GeoPoint
	DeliveryRangeKm float64

	// AverageRating is derived from the rating history; 0 when unrated.
	AverageRating float64

	MenuItems []MenuItem
}

// MenuItem is the projection of one active menu entry with its live price.
// Orders capture the price at placement time; this projection always shows
// the current one.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        kernel.Money
	Available    bool
}

// FindMenuItem returns the menu item with the given id, or nil when the
// restaurant has no such item.
func (r *Restaurant) FindMenuItem(id kernel.UUID) *MenuItem {
	for i := range r.MenuItems {
		if r.MenuItems[i].ID.IsEqual(id) {
			return &r.MenuItems[i]
		}
	}
	return nil
}

// HasMenuItemInPriceBand reports whether any menu item's price falls within
// [minPrice, maxPrice]. A restaurant qualifies for a price-band filter if at
// least one item does.
func (r *Restaurant) HasMenuItemInPriceBand(minPrice, maxPrice kernel.Money) bool {
	for _, item := range r.MenuItems {
		amount := item.Price.Amount()
		if amount.GreaterThanOrEqual(minPrice.Amount()) && amount.LessThanOrEqual(maxPrice.Amount()) {
			return true
		}
	}
	return false
}
