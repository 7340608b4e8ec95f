package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// AcceptAssignmentCommandHandler resolves a pending handshake positively.
// Only the currently-assigned driver may accept, exactly once.
type AcceptAssignmentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptAssignmentCommandHandler creates a handler for driver acceptance.
func NewAcceptAssignmentCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the acceptance command.
func (h AcceptAssignmentCommandHandler) Handle(ctx context.Context, command AcceptAssignmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AcceptAssignment(command.DriverID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(ports.EventAssignmentAccepted, aggregate, ""))
	return nil
}
