// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the aggregates and read projection rows straight
// from the database.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's orders, newest first.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's order list.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

// OrderSummary is the read-side row for order listings: enough for a list
// screen, without the full item and history payload.
type OrderSummary struct {
	ID            kernel.UUID
	Status        string
	DriverID      *kernel.UUID
	Total         float64
	PaymentMethod string
	PaymentStatus string
	CreatedAt     time.Time
}
