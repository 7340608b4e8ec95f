package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// ErrActorNotAllowed is returned when the actor's role or ownership does not
// permit the requested operation.
var ErrActorNotAllowed = errors.New("actor is not allowed to perform this operation")

// UpdateOrderStatusCommandHandler applies role-gated status changes.
//
// Per-actor rules:
//   - customer: may only cancel their own order, and only while it is still
//     placed or confirmed
//   - restaurant: drives its own orders through the kitchen flow; late-stage
//     cancellation is held to the same placed/confirmed window as customers
//   - driver: rejected here, drivers advance delivery through their own path
//   - admin: rejected here, support issues a replacement order instead of
//     editing status
//
// Cancelling or delivering an order releases the assigned driver in the same
// transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status-change command.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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

	if err = h.authorize(command, aggregate); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(command.NewStatus(), command.Note()); err != nil {
		return err
	}

	if aggregate.IsTerminal() && aggregate.DriverID() != nil {
		if err = h.releaseDriver(ctx, uow, *aggregate.DriverID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(ports.EventOrderStatusChanged, aggregate, command.Note()))
	return nil
}

func (h UpdateOrderStatusCommandHandler) authorize(command UpdateOrderStatusCommand, aggregate *order.Order) error {
	actor := command.Actor()

	switch actor.Role() {
	case kernel.RoleCustomer:
		if !aggregate.CustomerID().IsEqual(actor.ID()) {
			return ErrActorNotAllowed
		}
		if command.NewStatus() != order.StatusCancelled {
			return ErrActorNotAllowed
		}
		if !aggregate.WithinCancellationWindow() {
			return order.ErrInvalidStatusTransition
		}
		return nil

	case kernel.RoleRestaurant:
		if !aggregate.RestaurantID().IsEqual(actor.ID()) {
			return ErrActorNotAllowed
		}
		if command.NewStatus() == order.StatusCancelled && !aggregate.WithinCancellationWindow() {
			return order.ErrInvalidStatusTransition
		}
		return nil

	default:
		return ErrActorNotAllowed
	}
}

func (h UpdateOrderStatusCommandHandler) releaseDriver(ctx context.Context, uow UoW, driverID kernel.UUID) error {
	assigned, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return err
	}

	assigned.MarkFree()
	return uow.DriverRepository().Update(ctx, assigned)
}
