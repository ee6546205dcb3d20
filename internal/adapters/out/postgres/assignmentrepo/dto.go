// Package assignmentrepo persists courier assignment aggregates.
package assignmentrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO is the database representation of a courier assignment.
type AssignmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	CourierID   uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"type:varchar(32);index"`
	AssignedAt  time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Version     int
}

// TableName overrides GORM's default naming to "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CourierID:   aggregate.CourierID().Bytes(),
		Status:      aggregate.Status().String(),
		AssignedAt:  aggregate.AssignedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Version:     aggregate.Version(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id, orderID, courierID, status,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt, dto.Version,
	)
}
