package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a restaurant's or admin's request to hand
// an order to a driver. With a nil driver ID the directory picks one
// (auto-assign); with a driver ID the named driver is validated and used.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	orderID  kernel.UUID
	driverID *kernel.UUID
	note     string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates an assignment command. Pass a nil driverID
// for auto-assign.
func NewAssignDriverCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	driverID *kernel.UUID,
	note string,
) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setOrderID(orderID),
		command.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// Actor returns who requested the assignment.
func (c AssignDriverCommand) Actor() kernel.Actor { return c.actor }

// OrderID returns the target order's identifier.
func (c AssignDriverCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the named driver, nil for auto-assign.
func (c AssignDriverCommand) DriverID() *kernel.UUID { return c.driverID }

// Note returns the optional history annotation.
func (c AssignDriverCommand) Note() string { return c.note }

func (c *AssignDriverCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
