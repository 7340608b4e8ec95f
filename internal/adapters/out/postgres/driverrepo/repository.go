package driverrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver profile to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver profile, conditional on the version it was
// loaded with. A lost race surfaces as a version conflict so the assignment
// workflow can re-check instead of silently double-booking the driver.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loadedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver profile by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAvailable retrieves drivers eligible for a new assignment, ordered by
// registration time so dispatch is deterministic for a given snapshot.
func (r *GormDriverRepository) FindAvailable(ctx context.Context, exclude []kernel.UUID) ([]*driver.Driver, error) {
	query := r.db.WithContext(ctx).
		Where("online = ? AND blocked = ? AND current_order_id IS NULL", true, false).
		Order("registered_at")

	if len(exclude) > 0 {
		excluded := make([]any, 0, len(exclude))
		for _, id := range exclude {
			excluded = append(excluded, id.Bytes())
		}
		query = query.Where("id NOT IN ?", excluded)
	}

	var dtos []DriverDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllBusy retrieves every driver currently tied to an order.
func (r *GormDriverRepository) GetAllBusy(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("current_order_id IS NOT NULL").
		Order("registered_at").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DriverDTO) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, aggregate)
	}
	return drivers, nil
}
