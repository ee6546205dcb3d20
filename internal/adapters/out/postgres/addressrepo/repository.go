// Package addressrepo reads delivery address projections owned by the
// external customer service. The core only needs them to check that an
// address belongs to the ordering customer.
package addressrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressDTO is the database representation of a delivery address record.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Street     string
	City       string
	State      string
	Country    string
	Lat        *float64
	Lon        *float64
}

// TableName overrides GORM's default naming to "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// GormAddressReader implements ports.AddressReader using GORM.
type GormAddressReader struct {
	db *gorm.DB
}

// NewGormAddressReader creates a read-only address adapter.
func NewGormAddressReader(db *gorm.DB) *GormAddressReader {
	return &GormAddressReader{db: db}
}

// Get retrieves an address by id.
func (r *GormAddressReader) Get(ctx context.Context, id kernel.UUID) (*customer.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("addressID", id.String())
		}
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address := &customer.Address{
		ID:         addressID,
		CustomerID: customerID,
		Street:     dto.Street,
		City:       dto.City,
		State:      dto.State,
		Country:    dto.Country,
	}

	if dto.Lat != nil && dto.Lon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if pointErr != nil {
			return nil, pointErr
		}
		address.Location = &point
	}

	return address, nil
}
