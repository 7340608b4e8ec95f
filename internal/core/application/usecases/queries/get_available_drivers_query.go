package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves drivers eligible for a new assignment,
// in the same order the dispatcher would consider them.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a parameterless availability query.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// DriverSummary is the read-side row for driver listings.
type DriverSummary struct {
	ID           kernel.UUID
	Name         string
	RegisteredAt time.Time
}
