package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrReplaceOrderCommandIsNotConstructed = errors.New(
		"ReplaceOrderCommand must be created via NewReplaceOrderCommand constructor",
	)
	ErrSupportNoteIsRequired = errors.New("support note is required")
)

// ReplaceOrderCommand represents a support admin issuing a replacement
// order: a fresh order cloned from a prior one, back-referencing it. This is
// a compensating action, never a status edit on the original.
type ReplaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor           kernel.Actor
	newOrderID      kernel.UUID
	originalOrderID kernel.UUID
	supportNote     string

	guard guard.ConstructorGuard
}

// NewReplaceOrderCommand creates a replacement command. The support note is
// mandatory, it records why the replacement was issued.
func NewReplaceOrderCommand(
	actor kernel.Actor,
	newOrderID, originalOrderID kernel.UUID,
	supportNote string,
) (ReplaceOrderCommand, error) {
	command := ReplaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setNewOrderID(newOrderID),
		command.setOriginalOrderID(originalOrderID),
		command.setSupportNote(supportNote),
	); err != nil {
		return ReplaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderCommandIsNotConstructed)
}

// Actor returns who requested the replacement.
func (c ReplaceOrderCommand) Actor() kernel.Actor { return c.actor }

// NewOrderID returns the identifier the replacement will be created under.
func (c ReplaceOrderCommand) NewOrderID() kernel.UUID { return c.newOrderID }

// OriginalOrderID returns the order being replaced.
func (c ReplaceOrderCommand) OriginalOrderID() kernel.UUID { return c.originalOrderID }

// SupportNote returns the support annotation for the replacement.
func (c ReplaceOrderCommand) SupportNote() string { return c.supportNote }

func (c *ReplaceOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ReplaceOrderCommand) setNewOrderID(newOrderID kernel.UUID) error {
	if err := newOrderID.Validate(); err != nil {
		return err
	}
	c.newOrderID = newOrderID
	return nil
}

func (c *ReplaceOrderCommand) setOriginalOrderID(originalOrderID kernel.UUID) error {
	if err := originalOrderID.Validate(); err != nil {
		return err
	}
	c.originalOrderID = originalOrderID
	return nil
}

func (c *ReplaceOrderCommand) setSupportNote(supportNote string) error {
	if supportNote == "" {
		return ErrSupportNoteIsRequired
	}
	c.supportNote = supportNote
	return nil
}
