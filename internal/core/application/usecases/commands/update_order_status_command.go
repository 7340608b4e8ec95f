package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an actor's request to move an order to
// a new status: a restaurant driving the kitchen flow, or a customer
// cancelling while still allowed to.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	orderID   kernel.UUID
	newStatus order.Status
	note      string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status-change command. The status
// string must name a known lifecycle status; the note is optional and lands
// in the order's history.
func NewUpdateOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	newStatus, note string,
) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns who requested the change.
func (c UpdateOrderStatusCommand) Actor() kernel.Actor { return c.actor }

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// Note returns the optional history annotation.
func (c UpdateOrderStatusCommand) Note() string { return c.note }

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus string) error {
	status, err := order.StatusFromString(newStatus)
	if err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
