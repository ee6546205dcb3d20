// Package courierrepo reads courier projections. Courier records are owned
// by the external identity service; this adapter reads them for dispatch.
package courierrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourierDTO is the database representation of a courier record. Lat and Lon
// hold the last reported position, null when the courier never reported one.
type CourierDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Lat  *float64
	Lon  *float64
}

// TableName overrides GORM's default naming to "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// GormCourierReader implements ports.CourierReader using GORM.
type GormCourierReader struct {
	db *gorm.DB
}

// NewGormCourierReader creates a read-only courier adapter.
func NewGormCourierReader(db *gorm.DB) *GormCourierReader {
	return &GormCourierReader{db: db}
}

// Get retrieves a courier by id.
func (r *GormCourierReader) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courierID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFree retrieves couriers with no active assignment. A courier is busy
// from the moment an assignment is created until it is delivered or
// cancelled.
func (r *GormCourierReader) GetAllFree(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM assignments a WHERE a.courier_id = couriers.id AND a.status IN (?, ?))",
			assignment.Assigned.String(), assignment.PickedUp.String()).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		projection, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		couriers = append(couriers, projection)
	}

	return couriers, nil
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	projection := &courier.Courier{
		ID:   id,
		Name: dto.Name,
	}

	if dto.Lat != nil && dto.Lon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if pointErr != nil {
			return nil, pointErr
		}
		projection.Location = &point
	}

	return projection, nil
}
