package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// Event kinds emitted by the order lifecycle engine.
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventAssignmentOffered  = "order.assignment_offered"
	EventAssignmentAccepted = "order.assignment_accepted"
	EventAssignmentDeclined = "order.assignment_declined"
	EventOrderReassigned    = "order.reassigned"
	EventAssignmentCleared  = "order.assignment_cleared"
	EventOrderReplaced      = "order.replaced"
)

// OrderEvent is the notification payload fanned out after a lifecycle change
// commits. CustomerID and RestaurantID let a consumer route the event to
// every party with a view of the order; DriverID is set only while a driver
// is assigned. Note carries the history annotation of the change that
// produced the event.
type OrderEvent struct {
	Kind         string
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Status       order.Status
	DriverID     *kernel.UUID
	Note         string
	OccurredAt   time.Time
}

// NewOrderEvent builds an event for the given order's current state.
func NewOrderEvent(kind string, aggregate *order.Order, note string) OrderEvent {
	return OrderEvent{
		Kind:         kind,
		OrderID:      aggregate.ID(),
		CustomerID:   aggregate.CustomerID(),
		RestaurantID: aggregate.RestaurantID(),
		Status:       aggregate.Status(),
		DriverID:     aggregate.DriverID(),
		Note:         note,
		OccurredAt:   time.Now().UTC(),
	}
}

// EventPublisher fans lifecycle events out to interested parties. Publishing
// is best-effort and happens after the transaction commits: a delivery
// failure is logged by the caller and never rolls back the state change.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
