package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// DeclineAssignmentCommandHandler resolves a pending handshake negatively
// and immediately looks for a replacement.
//
// Workflow:
//   - only the currently-assigned driver may decline, exactly once
//   - the decliner is freed and forced back online
//   - the directory is searched excluding the decliner; a hit re-enters the
//     handshake against the replacement, a miss leaves the order awaiting
//     manual assignment with the handshake cleared
//   - exactly one event is published for the whole sequence, reflecting the
//     final state
type DeclineAssignmentCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewDeclineAssignmentCommandHandler creates a handler for driver declines.
func NewDeclineAssignmentCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) DeclineAssignmentCommandHandler {
	return DeclineAssignmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the decline command.
func (h DeclineAssignmentCommandHandler) Handle(ctx context.Context, command DeclineAssignmentCommand) error {
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

	if err = aggregate.DeclineAssignment(command.DriverID()); err != nil {
		return err
	}

	decliner, err := uow.DriverRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}
	decliner.MarkFree()
	if err = uow.DriverRepository().Update(ctx, decliner); err != nil {
		return err
	}

	eventKind, err := h.reassign(ctx, uow, aggregate, decliner.ID())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(eventKind, aggregate, ""))
	return nil
}

func (h DeclineAssignmentCommandHandler) reassign(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	declinerID kernel.UUID,
) (string, error) {
	exclude := []kernel.UUID{declinerID}

	candidates, err := uow.DriverRepository().FindAvailable(ctx, exclude)
	if err != nil {
		return "", err
	}

	replacement, err := services.NewDriverDispatcher().Redispatch(aggregate, candidates, exclude)
	if errors.Is(err, services.ErrDriverNotFound) {
		aggregate.ClearAssignment()
		return ports.EventAssignmentCleared, nil
	}
	if err != nil {
		return "", err
	}

	if err = uow.DriverRepository().Update(ctx, replacement); err != nil {
		return "", err
	}
	return ports.EventOrderReassigned, nil
}
