// Package restaurantrepo reads restaurant projections. Restaurant and menu
// records are owned by the catalog CRUD service; this adapter only reads
// them for order validation and search.
package restaurantrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RestaurantDTO is the database representation of a restaurant record.
// Coordinates are nullable: not every restaurant has been geocoded.
type RestaurantDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"index"`
	CuisineType     string
	City            string
	State           string
	Country         string
	Lat             *float64
	Lon             *float64
	DeliveryRangeKm float64
	MenuItems       []MenuItemDTO `gorm:"foreignKey:RestaurantID;references:ID"`
}

// TableName overrides GORM's default naming to "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is the database representation of one menu entry.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal
	Available    bool
}

// TableName overrides GORM's default naming to "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// GormRestaurantReader implements ports.RestaurantReader using GORM.
type GormRestaurantReader struct {
	db *gorm.DB
}

// NewGormRestaurantReader creates a read-only restaurant adapter.
func NewGormRestaurantReader(db *gorm.DB) *GormRestaurantReader {
	return &GormRestaurantReader{db: db}
}

// Get retrieves a restaurant with its menu items.
func (r *GormRestaurantReader) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).Preload("MenuItems").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurantID", id.String())
		}
		return nil, err
	}

	projection, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	return &projection, nil
}

// GetAll retrieves every restaurant with its menu items.
func (r *GormRestaurantReader) GetAll(ctx context.Context) ([]restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Preload("MenuItems").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		projection, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, projection)
	}

	return restaurants, nil
}

func toDomain(dto RestaurantDTO) (restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return restaurant.Restaurant{}, err
	}

	projection := restaurant.Restaurant{
		ID:              id,
		Name:            dto.Name,
		CuisineType:     dto.CuisineType,
		City:            dto.City,
		State:           dto.State,
		Country:         dto.Country,
		DeliveryRangeKm: dto.DeliveryRangeKm,
	}

	if dto.Lat != nil && dto.Lon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if pointErr != nil {
			return restaurant.Restaurant{}, pointErr
		}
		projection.Location = &point
	}

	for _, itemDTO := range dto.MenuItems {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return restaurant.Restaurant{}, itemErr
		}
		price, itemErr := kernel.NewMoney(itemDTO.Price)
		if itemErr != nil {
			return restaurant.Restaurant{}, itemErr
		}
		projection.MenuItems = append(projection.MenuItems, restaurant.MenuItem{
			ID:           itemID,
			RestaurantID: id,
			Name:         itemDTO.Name,
			Price:        price,
			Available:    itemDTO.Available,
		})
	}

	return projection, nil
}
