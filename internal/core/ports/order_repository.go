// Package ports defines the contracts between the order lifecycle core and
// the infrastructure adapters: repositories, the unit of work, the event
// publisher, and the placement-time collaborators. The interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the version the aggregate was loaded with; a concurrent
	// writer winning the race yields a version-conflict error.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOpenAssignedTo retrieves the non-terminal orders currently
	// assigned to the given driver. Used by reconciliation to decide whether
	// a busy driver can be freed.
	GetAllOpenAssignedTo(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)
}
