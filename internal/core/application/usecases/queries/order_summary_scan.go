package queries

import (
	"database/sql"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanOrderSummaries converts order listing rows into summaries. The total
// is recomputed from the money columns with the same zero clamp the
// aggregate applies.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var id uuid.UUID
		var status, paymentMethod, paymentStatus string
		var driverID uuid.NullUUID
		var subtotal, deliveryFee, discount float64
		var createdAt time.Time

		if err := rows.Scan(
			&id,
			&status,
			&driverID,
			&subtotal,
			&deliveryFee,
			&discount,
			&paymentMethod,
			&paymentStatus,
			&createdAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		summary := OrderSummary{
			ID:            orderID,
			Status:        status,
			Total:         clampTotal(subtotal, deliveryFee, discount),
			PaymentMethod: paymentMethod,
			PaymentStatus: paymentStatus,
			CreatedAt:     createdAt,
		}

		if driverID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			summary.DriverID = &assigned
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func clampTotal(subtotal, deliveryFee, discount float64) float64 {
	total := subtotal + deliveryFee - discount
	if total < 0 {
		return 0
	}
	return total
}
