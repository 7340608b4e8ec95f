package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves the orders currently assigned to a driver,
// open ones only.
type GetDriverOrdersQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for one driver's open orders.
func NewGetDriverOrdersQuery(driverID kernel.UUID) (GetDriverOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}
	return GetDriverOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose orders are listed.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID { return q.driverID }
