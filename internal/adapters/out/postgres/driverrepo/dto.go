// Package driverrepo provides data transfer objects and mapping functions
// for driver profile persistence.
package driverrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver profiles.
type DriverDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string
	Online         bool       `gorm:"index"`
	Blocked        bool
	CurrentOrderID *uuid.UUID `gorm:"type:uuid;index"`
	RegisteredAt   time.Time  `gorm:"index"`
	Version        int
}

// TableName specifies the database table name for driver profiles.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver profile to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Online:         aggregate.IsOnline(),
		Blocked:        aggregate.IsBlocked(),
		CurrentOrderID: currentOrderID,
		RegisteredAt:   aggregate.RegisteredAt(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database row to a driver profile via RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &orderID
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Online,
		dto.Blocked,
		currentOrderID,
		dto.RegisteredAt,
		dto.Version,
	)
}
