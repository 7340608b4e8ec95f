package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver profiles.
type DriverRepository interface {
	// Add persists a new driver profile to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver profile, conditional on
	// the version the profile was loaded with.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// FindAvailable retrieves drivers eligible for a new assignment: online,
	// not blocked, carrying no order, and not in the exclude list. Results
	// are ordered by registration time, earliest first, so dispatch is
	// deterministic for a given directory snapshot.
	FindAvailable(ctx context.Context, exclude []kernel.UUID) ([]*driver.Driver, error)

	// GetAllBusy retrieves every driver currently tied to an order.
	// Reconciliation walks this set to free drivers whose order closed
	// without MarkFree running.
	GetAllBusy(ctx context.Context) ([]*driver.Driver, error)
}
