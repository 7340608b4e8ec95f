package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler lists a restaurant's orders from the
// database, newest first, optionally filtered to one status.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order listings.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE restaurant_id = ?
	`
	args := []any{query.RestaurantID().String()}

	if query.Status() != "" {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
