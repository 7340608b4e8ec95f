// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. Items and
// history travel as jsonb documents inside the order row; they are part of
// the aggregate and never queried relationally.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID        `gorm:"type:uuid;index"`
	RestaurantID     uuid.UUID        `gorm:"type:uuid;index"`
	DriverID         *uuid.UUID       `gorm:"type:uuid;index"`
	Status           string           `gorm:"index"`
	Acceptance       string
	Items            []ItemDTO        `gorm:"serializer:json;type:jsonb"`
	History          []StatusChangeDTO `gorm:"serializer:json;type:jsonb"`
	Subtotal         float64
	DeliveryFee      float64
	Discount         float64
	OfferCode        string
	DeliveryAddress  string
	PaymentMethod    string
	PaymentStatus    string
	PaymentReference string
	PaidAt           *time.Time
	ConfirmedAt      *time.Time
	PreparingAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	ReplacesOrderID  *uuid.UUID `gorm:"type:uuid"`
	SupportNote      string
	CreatedAt        time.Time
	Version          int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb shape of one order line item.
type ItemDTO struct {
	FoodID   uuid.UUID `json:"food_id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

// StatusChangeDTO is the jsonb shape of one history entry.
type StatusChangeDTO struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	Note      string    `json:"note,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			FoodID:   item.FoodID().Bytes(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, StatusChangeDTO{
			Status:    change.Status.String(),
			ChangedAt: change.ChangedAt,
			Note:      change.Note,
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		RestaurantID:     aggregate.RestaurantID().Bytes(),
		DriverID:         uuidPtr(aggregate.DriverID()),
		Status:           aggregate.Status().String(),
		Acceptance:       aggregate.DriverAcceptance().String(),
		Items:            items,
		History:          history,
		Subtotal:         aggregate.Pricing().Subtotal(),
		DeliveryFee:      aggregate.Pricing().DeliveryFee(),
		Discount:         aggregate.Pricing().Discount(),
		OfferCode:        aggregate.OfferCode(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		PaymentReference: aggregate.PaymentReference(),
		PaidAt:           aggregate.PaidAt(),
		ConfirmedAt:      aggregate.ConfirmedAt(),
		PreparingAt:      aggregate.PreparingAt(),
		OutForDeliveryAt: aggregate.OutForDeliveryAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CancelledAt:      aggregate.CancelledAt(),
		ReplacesOrderID:  uuidPtr(aggregate.ReplacesOrderID()),
		SupportNote:      aggregate.SupportNote(),
		CreatedAt:        aggregate.CreatedAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernelUUIDPtr(dto.DriverID)
	if err != nil {
		return nil, err
	}
	replacesOrderID, err := kernelUUIDPtr(dto.ReplacesOrderID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		foodID, idErr := kernel.UUIDFromBytes(itemDTO.FoodID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(foodID, itemDTO.Name, itemDTO.Price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		status, statusErr := order.StatusFromString(changeDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.StatusChange{
			Status:    status,
			ChangedAt: changeDTO.ChangedAt,
			Note:      changeDTO.Note,
		})
	}

	pricing, err := order.NewPricing(dto.Subtotal, dto.DeliveryFee, dto.Discount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		CustomerID:       customerID,
		RestaurantID:     restaurantID,
		DriverID:         driverID,
		Items:            items,
		Pricing:          pricing,
		OfferCode:        dto.OfferCode,
		DeliveryAddress:  dto.DeliveryAddress,
		PaymentMethod:    order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:    order.PaymentStatus(dto.PaymentStatus),
		PaidAt:           dto.PaidAt,
		PaymentReference: dto.PaymentReference,
		Status:           order.Status(dto.Status),
		Acceptance:       order.Acceptance(dto.Acceptance),
		History:          history,
		ConfirmedAt:      dto.ConfirmedAt,
		PreparingAt:      dto.PreparingAt,
		OutForDeliveryAt: dto.OutForDeliveryAt,
		DeliveredAt:      dto.DeliveredAt,
		CancelledAt:      dto.CancelledAt,
		ReplacesOrderID:  replacesOrderID,
		SupportNote:      dto.SupportNote,
		CreatedAt:        dto.CreatedAt,
		Version:          dto.Version,
	})
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
