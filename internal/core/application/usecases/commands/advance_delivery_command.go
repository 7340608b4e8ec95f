package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand represents the assigned driver moving the order
// along the delivery leg: out_for_delivery or delivered.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	orderID   kernel.UUID
	newStatus order.Status
	note      string

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a delivery-advance command. The status
// string must name a known lifecycle status; the driver-specific restriction
// to the delivery leg is enforced by the aggregate.
func NewAdvanceDeliveryCommand(
	driverID, orderID kernel.UUID,
	newStatus, note string,
) (AdvanceDeliveryCommand, error) {
	command := AdvanceDeliveryCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// DriverID returns the advancing driver's identifier.
func (c AdvanceDeliveryCommand) DriverID() kernel.UUID { return c.driverID }

// OrderID returns the target order's identifier.
func (c AdvanceDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the requested target status.
func (c AdvanceDeliveryCommand) NewStatus() order.Status { return c.newStatus }

// Note returns the optional history annotation.
func (c AdvanceDeliveryCommand) Note() string { return c.note }

func (c *AdvanceDeliveryCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AdvanceDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceDeliveryCommand) setNewStatus(newStatus string) error {
	status, err := order.StatusFromString(newStatus)
	if err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
