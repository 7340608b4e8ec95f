// Package offerrepo resolves offer codes into discount amounts. Offers live
// in their own table and are evaluated at placement time against the cart
// subtotal.
package offerrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount types supported by an offer.
const (
	DiscountTypePercent = "percent"
	DiscountTypeFlat    = "flat"
)

// ErrOfferNotEligible is returned when an offer exists but cannot be applied
// to the given subtotal.
var ErrOfferNotEligible = errors.New("offer is not eligible for this order")

// OfferDTO represents the database structure for persisting offers. A nil
// RestaurantID marks a platform-wide offer; a set one restricts the code to
// that restaurant's orders.
type OfferDTO struct {
	Code         string     `gorm:"primaryKey"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	DiscountType string
	Value        float64
	MinSubtotal  float64
	MaxDiscount  float64
	Active       bool
	ExpiresAt    *time.Time
}

// TableName specifies the database table name for offers.
func (OfferDTO) TableName() string {
	return "offers"
}

// GormOfferRepository implements ports.DiscountEvaluator using GORM.
type GormOfferRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{
		db:  db,
		now: time.Now,
	}
}

// Evaluate resolves an offer code into a discount amount for the restaurant
// and subtotal. Unknown codes yield an object-not-found error; inactive,
// expired, under-minimum or wrong-restaurant offers yield
// ErrOfferNotEligible.
func (r *GormOfferRepository) Evaluate(ctx context.Context, code string, restaurantID kernel.UUID, subtotal float64) (float64, error) {
	if code == "" {
		return 0, errs.NewValueIsRequiredError("code")
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("offer", code)
		}
		return 0, err
	}

	return computeDiscount(dto, restaurantID, subtotal, r.now())
}

// computeDiscount applies the offer's rules to a restaurant's subtotal.
func computeDiscount(dto OfferDTO, restaurantID kernel.UUID, subtotal float64, now time.Time) (float64, error) {
	if !dto.Active {
		return 0, ErrOfferNotEligible
	}
	if dto.RestaurantID != nil && *dto.RestaurantID != restaurantID.Bytes() {
		return 0, ErrOfferNotEligible
	}
	if dto.ExpiresAt != nil && now.After(*dto.ExpiresAt) {
		return 0, ErrOfferNotEligible
	}
	if subtotal < dto.MinSubtotal {
		return 0, ErrOfferNotEligible
	}

	var discount float64
	switch dto.DiscountType {
	case DiscountTypePercent:
		discount = subtotal * dto.Value / 100
	case DiscountTypeFlat:
		discount = dto.Value
	default:
		return 0, errs.NewValueIsInvalidError("discountType")
	}

	if dto.MaxDiscount > 0 && discount > dto.MaxDiscount {
		discount = dto.MaxDiscount
	}
	if discount > subtotal {
		discount = subtotal
	}

	return discount, nil
}
