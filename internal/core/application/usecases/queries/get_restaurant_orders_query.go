package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery retrieves a restaurant's orders, optionally
// filtered to one status, newest first.
type GetRestaurantOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	status       order.Status

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for one restaurant's orders.
// An empty status string means no status filter.
func NewGetRestaurantOrdersQuery(restaurantID kernel.UUID, status string) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	query := GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return GetRestaurantOrdersQuery{}, err
		}
		query.status = parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// Status returns the status filter, empty when unfiltered.
func (q GetRestaurantOrdersQuery) Status() order.Status { return q.status }
