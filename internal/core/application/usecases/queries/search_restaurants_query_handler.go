package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SearchRestaurantsQueryHandler executes restaurant searches. It loads the
// candidate projections with their menus and live rating averages, then
// delegates filtering and distance computation to the domain search
// service. The database narrows nothing beyond existence: the filter
// pipeline is domain logic and stays out of SQL.
type SearchRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewSearchRestaurantsQueryHandler creates a handler for restaurant
// searches.
func NewSearchRestaurantsQueryHandler(db *gorm.DB) SearchRestaurantsQueryHandler {
	return SearchRestaurantsQueryHandler{db: db}
}

// Handle executes the search and returns matching restaurants with their
// computed distances.
func (h SearchRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query SearchRestaurantsQuery,
) ([]SearchRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.loadRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	results, err := services.NewRestaurantSearch().Search(query.Criteria(), candidates)
	if err != nil {
		return nil, err
	}

	responses := make([]SearchRestaurantsQueryResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, SearchRestaurantsQueryResponse{
			ID:            result.Restaurant.ID,
			Name:          result.Restaurant.Name,
			CuisineType:   result.Restaurant.CuisineType,
			City:          result.Restaurant.City,
			State:         result.Restaurant.State,
			Country:       result.Restaurant.Country,
			AverageRating: result.Restaurant.AverageRating,
			DistanceKm:    result.DistanceKm,
		})
	}

	return responses, nil
}

func (h SearchRestaurantsQueryHandler) loadRestaurants(
	ctx context.Context,
) ([]restaurant.Restaurant, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.cuisine_type,
			r.city,
			r.state,
			r.country,
			r.lat,
			r.lon,
			r.delivery_range_km,
			COALESCE(AVG(rt.score), 0)
		FROM restaurants r
		LEFT JOIN ratings rt ON rt.subject_id = r.id AND rt.role = ?
		GROUP BY r.id, r.name, r.cuisine_type, r.city, r.state, r.country,
			r.lat, r.lon, r.delivery_range_km
		ORDER BY r.name
	`, rating.RoleRestaurant.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]restaurant.Restaurant, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id       uuid.UUID
			r        restaurant.Restaurant
			lat, lon *float64
		)

		if err = rows.Scan(
			&id, &r.Name, &r.CuisineType, &r.City, &r.State, &r.Country,
			&lat, &lon, &r.DeliveryRangeKm, &r.AverageRating,
		); err != nil {
			return nil, err
		}

		r.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if lat != nil && lon != nil {
			point, pointErr := kernel.NewGeoPoint(*lat, *lon)
			if pointErr != nil {
				return nil, pointErr
			}
			r.Location = &point
		}

		index[id] = len(restaurants)
		restaurants = append(restaurants, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.loadMenuItems(ctx, restaurants, index); err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (h SearchRestaurantsQueryHandler) loadMenuItems(
	ctx context.Context,
	restaurants []restaurant.Restaurant,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, restaurant_id, name, price, available
		FROM menu_items
		ORDER BY restaurant_id, name
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, restaurantID uuid.UUID
			name             string
			price            decimal.Decimal
			available        bool
		)

		if err = rows.Scan(&id, &restaurantID, &name, &price, &available); err != nil {
			return err
		}

		pos, ok := index[restaurantID]
		if !ok {
			continue
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return idErr
		}
		itemPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return priceErr
		}

		restaurants[pos].MenuItems = append(restaurants[pos].MenuItems, restaurant.MenuItem{
			ID:           itemID,
			RestaurantID: ownerID,
			Name:         name,
			Price:        itemPrice,
			Available:    available,
		})
	}

	return rows.Err()
}
