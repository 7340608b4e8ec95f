package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeclineAssignmentCommandIsNotConstructed = errors.New(
	"DeclineAssignmentCommand must be created via NewDeclineAssignmentCommand constructor",
)

// DeclineAssignmentCommand represents a driver refusing the order they were
// offered. Declining triggers an automatic reassignment search.
type DeclineAssignmentCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclineAssignmentCommand creates a decline command.
func NewDeclineAssignmentCommand(driverID, orderID kernel.UUID) (DeclineAssignmentCommand, error) {
	command := DeclineAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setOrderID(orderID),
	); err != nil {
		return DeclineAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeclineAssignmentCommandIsNotConstructed)
}

// DriverID returns the declining driver's identifier.
func (c DeclineAssignmentCommand) DriverID() kernel.UUID { return c.driverID }

// OrderID returns the target order's identifier.
func (c DeclineAssignmentCommand) OrderID() kernel.UUID { return c.orderID }

func (c *DeclineAssignmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *DeclineAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
