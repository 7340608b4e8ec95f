package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler lists drivers that are online, not
// blocked, and free, ordered by registration time so the output matches the
// dispatcher's candidate order.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for availability listings.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the availability query.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]DriverSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			registered_at
		FROM drivers
		WHERE online = true
		  AND blocked = false
		  AND current_order_id IS NULL
		ORDER BY registered_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var registeredAt time.Time

		if err = rows.Scan(&id, &name, &registeredAt); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		drivers = append(drivers, DriverSummary{
			ID:           driverID,
			Name:         name,
			RegisteredAt: registeredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return drivers, nil
}
