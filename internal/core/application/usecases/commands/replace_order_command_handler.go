package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// ReplaceOrderCommandHandler clones a prior order into a fresh placed one.
// Admin-only; the original order is left untouched.
type ReplaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewReplaceOrderCommandHandler creates a handler for replacement orders.
func NewReplaceOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ReplaceOrderCommandHandler {
	return ReplaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the replacement command.
func (h ReplaceOrderCommandHandler) Handle(ctx context.Context, command ReplaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.Actor().Role() != kernel.RoleAdmin {
		return ErrActorNotAllowed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	original, err := uow.OrderRepository().Get(ctx, command.OriginalOrderID())
	if err != nil {
		return err
	}

	replacement, err := order.NewReplacementOrder(command.NewOrderID(), original, command.SupportNote())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, replacement); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(ports.EventOrderReplaced, replacement, command.SupportNote()))
	return nil
}
