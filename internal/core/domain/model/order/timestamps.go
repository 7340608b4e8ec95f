package order

import "time"

// stampStatusTime records the first moment an order reached a status.
// First arrival wins: a timestamp that is already set is never overwritten,
// so history survives even if a status were somehow re-entered. Statuses
// without a dedicated timestamp field (placed is covered by createdAt) are
// no-ops.
func (o *Order) stampStatusTime(status Status, at time.Time) {
	switch status {
	case StatusConfirmed:
		if o.confirmedAt == nil {
			o.confirmedAt = &at
		}
	case StatusPreparing:
		if o.preparingAt == nil {
			o.preparingAt = &at
		}
	case StatusOutForDelivery:
		if o.outForDeliveryAt == nil {
			o.outForDeliveryAt = &at
		}
	case StatusDelivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &at
		}
	case StatusCancelled:
		if o.cancelledAt == nil {
			o.cancelledAt = &at
		}
	}
}
