package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// CartProvider supplies the customer's current cart at placement time. The
// lifecycle engine snapshots the returned items into the order and clears
// the cart once placement commits.
type CartProvider interface {
	// GetCart returns the customer's cart items. An empty slice means the
	// cart is empty; placement rejects it.
	GetCart(ctx context.Context, customerID kernel.UUID) ([]order.Item, error)

	// ClearCart empties the customer's cart after a successful placement.
	ClearCart(ctx context.Context, customerID kernel.UUID) error
}

// DiscountEvaluator resolves an offer code into a discount amount for a
// given restaurant and subtotal. An unknown, expired or wrong-restaurant
// code is an error; placement surfaces it to the customer instead of
// silently charging full price.
type DiscountEvaluator interface {
	Evaluate(ctx context.Context, code string, restaurantID kernel.UUID, subtotal float64) (float64, error)
}

// RestaurantInfo is the directory's view of a restaurant's standing at
// placement time.
type RestaurantInfo struct {
	Approved    bool
	Blocked     bool
	Open        bool
	DeliveryFee float64
}

// RestaurantDirectory gates order placement on the target restaurant. A
// restaurant that is unapproved, blocked or closed cannot receive orders;
// once an order is placed its lifecycle no longer consults the directory.
type RestaurantDirectory interface {
	// GetRestaurant returns the restaurant's standing, or an object-not-found
	// error when no such restaurant exists.
	GetRestaurant(ctx context.Context, restaurantID kernel.UUID) (RestaurantInfo, error)
}

// AccountDirectory answers identity questions about actors. The lifecycle
// engine trusts upstream authentication for the actor's identity but checks
// roles and existence here.
type AccountDirectory interface {
	// GetRole returns the role of the given account, or an object-not-found
	// error when the account does not exist.
	GetRole(ctx context.Context, accountID kernel.UUID) (kernel.Role, error)

	// GetName returns the account's display name.
	GetName(ctx context.Context, accountID kernel.UUID) (string, error)
}
