package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler lists the open orders assigned to a driver.
// Terminal orders drop out of the driver's work list.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver work listings.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			driver_id,
			subtotal,
			delivery_fee,
			discount,
			payment_method,
			payment_status,
			created_at
		FROM orders
		WHERE driver_id = ?
		  AND status NOT IN (?, ?)
		ORDER BY created_at
	`, query.DriverID().String(), order.StatusDelivered.String(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
