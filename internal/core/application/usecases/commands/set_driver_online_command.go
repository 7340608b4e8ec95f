package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetDriverOnlineCommandIsNotConstructed = errors.New(
	"SetDriverOnlineCommand must be created via NewSetDriverOnlineCommand constructor",
)

// SetDriverOnlineCommand represents a driver toggling their availability
// for new assignments.
type SetDriverOnlineCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	online   bool

	guard guard.ConstructorGuard
}

// NewSetDriverOnlineCommand creates an availability-toggle command.
func NewSetDriverOnlineCommand(driverID kernel.UUID, online bool) (SetDriverOnlineCommand, error) {
	command := SetDriverOnlineCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return SetDriverOnlineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverOnlineCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverOnlineCommandIsNotConstructed)
}

// DriverID returns the toggling driver's identifier.
func (c SetDriverOnlineCommand) DriverID() kernel.UUID { return c.driverID }

// Online returns the requested availability.
func (c SetDriverOnlineCommand) Online() bool { return c.online }

func (c *SetDriverOnlineCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
