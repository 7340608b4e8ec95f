package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// AdvanceDeliveryCommandHandler applies the driver's status writes.
//
// Reaching delivered frees the driver and brings them back online; reaching
// out_for_delivery reaffirms the driver's tie to the order. Cash-on-delivery
// payment capture on delivery happens inside the aggregate.
type AdvanceDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery advances.
func NewAdvanceDeliveryCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery-advance command.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, command AdvanceDeliveryCommand) error {
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

	if err = aggregate.AdvanceByDriver(command.DriverID(), command.NewStatus(), command.Note()); err != nil {
		return err
	}

	assigned, err := uow.DriverRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if command.NewStatus() == order.StatusDelivered {
		assigned.MarkFree()
	} else if err = assigned.MarkBusy(aggregate.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, assigned); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(ports.EventOrderStatusChanged, aggregate, command.Note()))
	return nil
}
