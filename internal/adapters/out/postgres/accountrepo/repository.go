// Package accountrepo answers identity questions about actors from the
// accounts table. Authentication happens upstream; this adapter looks up
// roles and display names, and gates placement on restaurant standing.
package accountrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountDTO represents the database structure for persisting accounts.
// The standing columns are meaningful only for restaurant rows.
type AccountDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Role        string
	Approved    bool
	Blocked     bool
	Open        bool
	DeliveryFee float64
	CreatedAt   time.Time
}

// TableName specifies the database table name for accounts.
func (AccountDTO) TableName() string {
	return "accounts"
}

// GormAccountRepository implements ports.AccountDirectory and
// ports.RestaurantDirectory using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// GetRole returns the role of the given account.
func (r *GormAccountRepository) GetRole(ctx context.Context, accountID kernel.UUID) (kernel.Role, error) {
	dto, err := r.get(ctx, accountID)
	if err != nil {
		return "", err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return "", err
	}

	return role, nil
}

// GetName returns the account's display name.
func (r *GormAccountRepository) GetName(ctx context.Context, accountID kernel.UUID) (string, error) {
	dto, err := r.get(ctx, accountID)
	if err != nil {
		return "", err
	}

	return dto.Name, nil
}

// GetRestaurant returns the restaurant's standing. A non-restaurant account
// is treated as not found.
func (r *GormAccountRepository) GetRestaurant(ctx context.Context, restaurantID kernel.UUID) (ports.RestaurantInfo, error) {
	dto, err := r.get(ctx, restaurantID)
	if err != nil {
		return ports.RestaurantInfo{}, err
	}
	if dto.Role != kernel.RoleRestaurant.String() {
		return ports.RestaurantInfo{}, errs.NewObjectNotFoundError("restaurant", restaurantID.String())
	}

	return ports.RestaurantInfo{
		Approved:    dto.Approved,
		Blocked:     dto.Blocked,
		Open:        dto.Open,
		DeliveryFee: dto.DeliveryFee,
	}, nil
}

func (r *GormAccountRepository) get(ctx context.Context, accountID kernel.UUID) (AccountDTO, error) {
	if err := accountID.Validate(); err != nil {
		return AccountDTO{}, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", accountID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountDTO{}, errs.NewObjectNotFoundError("account", accountID.String())
		}
		return AccountDTO{}, err
	}

	return dto, nil
}
