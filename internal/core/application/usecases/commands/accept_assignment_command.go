package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAcceptAssignmentCommandIsNotConstructed = errors.New(
	"AcceptAssignmentCommand must be created via NewAcceptAssignmentCommand constructor",
)

// AcceptAssignmentCommand represents a driver agreeing to carry the order
// they were offered.
type AcceptAssignmentCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptAssignmentCommand creates an acceptance command.
func NewAcceptAssignmentCommand(driverID, orderID kernel.UUID) (AcceptAssignmentCommand, error) {
	command := AcceptAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setOrderID(orderID),
	); err != nil {
		return AcceptAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAssignmentCommandIsNotConstructed)
}

// DriverID returns the accepting driver's identifier.
func (c AcceptAssignmentCommand) DriverID() kernel.UUID { return c.driverID }

// OrderID returns the target order's identifier.
func (c AcceptAssignmentCommand) OrderID() kernel.UUID { return c.orderID }

func (c *AcceptAssignmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AcceptAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
