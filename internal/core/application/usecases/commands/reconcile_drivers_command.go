package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrReconcileDriversCommandIsNotConstructed = errors.New(
	"ReconcileDriversCommand must be created via NewReconcileDriversCommand constructor",
)

// ReconcileDriversCommand triggers a sweep over busy drivers, freeing those
// whose order no longer needs them. A crash between an order write and the
// matching driver write can leave a driver tied to a closed order; this
// sweep is the idempotent repair.
type ReconcileDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileDriversCommand creates a parameterless reconciliation command.
func NewReconcileDriversCommand() ReconcileDriversCommand {
	return ReconcileDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileDriversCommand) Validate() error {
	return c.guard.Validate(ErrReconcileDriversCommandIsNotConstructed)
}
