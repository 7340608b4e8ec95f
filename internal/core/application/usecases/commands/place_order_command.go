package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// PlaceOrderCommand represents a customer's request to turn their cart into
// an order. The cart contents are resolved by the handler; the command only
// carries placement parameters.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	paymentMethod   order.PaymentMethod
	offerCode       string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. The payment
// method string must name a supported method; the offer code may be empty.
func NewPlaceOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	deliveryAddress, paymentMethod, offerCode string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setDeliveryAddress(deliveryAddress),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	command.offerCode = offerCode
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the placing customer's account identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// RestaurantID returns the restaurant the order is placed against.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// DeliveryAddress returns the free-form destination address.
func (c PlaceOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// PaymentMethod returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

// OfferCode returns the discount code, empty when none was applied.
func (c PlaceOrderCommand) OfferCode() string { return c.offerCode }

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	method, err := order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
