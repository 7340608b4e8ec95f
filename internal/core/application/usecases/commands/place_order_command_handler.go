package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// ErrCartIsEmpty is returned when the customer tries to place an order with
// nothing in their cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// ErrRestaurantUnavailable is returned when the target restaurant is
// unapproved, blocked or closed. Checked only at placement.
var ErrRestaurantUnavailable = errors.New("restaurant is unavailable")

// PlaceOrderCommandHandler turns a customer's cart into a placed order.
//
// Workflow:
//   - check the restaurant is approved, unblocked and open
//   - resolve the cart; an empty cart rejects the placement
//   - evaluate the offer code against the subtotal, if one was given
//   - snapshot items and money into a new order and persist it
//   - after commit: clear the cart (best effort) and publish order.placed
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	carts       ports.CartProvider
	discounts   ports.DiscountEvaluator
	restaurants ports.RestaurantDirectory
	publisher   ports.EventPublisher
	deliveryFee float64
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The delivery fee falls back to the configured flat per-order amount when
// the restaurant's directory entry does not set one.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartProvider,
	discounts ports.DiscountEvaluator,
	restaurants ports.RestaurantDirectory,
	publisher ports.EventPublisher,
	deliveryFee float64,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		carts:       carts,
		discounts:   discounts,
		restaurants: restaurants,
		publisher:   publisher,
		deliveryFee: deliveryFee,
	}
}

// Handle processes the placement command. The order is created in placed
// status with payment pending; items and totals are frozen from the cart as
// it exists right now.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	restaurant, err := h.restaurants.GetRestaurant(ctx, command.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.Approved || restaurant.Blocked || !restaurant.Open {
		return ErrRestaurantUnavailable
	}

	items, err := h.carts.GetCart(ctx, command.CustomerID())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrCartIsEmpty
	}

	subtotal := order.Subtotal(items)

	var discount float64
	if command.OfferCode() != "" {
		discount, err = h.discounts.Evaluate(ctx, command.OfferCode(), command.RestaurantID(), subtotal)
		if err != nil {
			return err
		}
	}

	deliveryFee := restaurant.DeliveryFee
	if deliveryFee <= 0 {
		deliveryFee = h.deliveryFee
	}

	pricing, err := order.NewPricing(subtotal, deliveryFee, discount)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.RestaurantID(),
		items,
		pricing,
		command.DeliveryAddress(),
		command.PaymentMethod(),
		command.OfferCode(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.carts.ClearCart(ctx, command.CustomerID()); err != nil {
		slog.WarnContext(ctx, "cart clear failed after placement",
			"customer_id", command.CustomerID().String(),
			"error", err)
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(ports.EventOrderPlaced, aggregate, ""))
	return nil
}
