// Package cartrepo implements the cart provider over postgres. A cart is one
// row per customer holding the pending items as a jsonb document; placement
// consumes it and clears the row.
package cartrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartDTO represents the database structure for one customer's cart.
type CartDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Items      []ItemDTO `gorm:"serializer:json;type:jsonb"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for carts.
func (CartDTO) TableName() string {
	return "carts"
}

// ItemDTO is the jsonb shape of one cart line.
type ItemDTO struct {
	FoodID   uuid.UUID `json:"food_id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

// GormCartRepository implements ports.CartProvider using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetCart returns the customer's cart items. A missing row means an empty
// cart, not an error.
func (r *GormCartRepository) GetCart(ctx context.Context, customerID kernel.UUID) ([]order.Item, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []order.Item{}, nil
	}
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

	return items, nil
}

// ClearCart empties the customer's cart after a successful placement.
// Clearing an absent cart is a no-op.
func (r *GormCartRepository) ClearCart(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartDTO{}, "customer_id = ?", customerID.Bytes()).
		Error
}

// SaveCart upserts the customer's cart with the given items.
func (r *GormCartRepository) SaveCart(ctx context.Context, customerID kernel.UUID, items []order.Item) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			FoodID:   item.FoodID().Bytes(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	dto := CartDTO{
		CustomerID: customerID.Bytes(),
		Items:      itemDTOs,
		UpdatedAt:  time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			UpdateAll: true,
		}).
		Create(&dto).
		Error
}
