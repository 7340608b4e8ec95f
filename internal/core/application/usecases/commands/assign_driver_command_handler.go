package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// ErrNoAvailableDrivers is returned when auto-assign finds nobody online,
// unblocked and free. A business condition, not a fault.
var ErrNoAvailableDrivers = errors.New("no available drivers")

// AssignDriverCommandHandler starts the acceptance handshake on an order.
//
// Workflow:
//   - restaurants may assign only their own orders; admins may assign any
//   - auto-assign asks the directory for the earliest-registered free
//     driver; a named driver is validated for role-independent eligibility
//   - assigning a placed order auto-confirms it
//   - the driver is marked busy in the same transaction; the version check
//     on the driver update surfaces races as a conflict
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if actor.Role() != kernel.RoleRestaurant && actor.Role() != kernel.RoleAdmin {
		return ErrActorNotAllowed
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

	if actor.Role() == kernel.RoleRestaurant && !aggregate.RestaurantID().IsEqual(actor.ID()) {
		return ErrActorNotAllowed
	}

	selected, err := h.selectDriver(ctx, uow, aggregate, command)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, selected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(ports.EventAssignmentOffered, aggregate, command.Note()))
	return nil
}

func (h AssignDriverCommandHandler) selectDriver(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	command AssignDriverCommand,
) (*driver.Driver, error) {
	if command.DriverID() == nil {
		candidates, err := uow.DriverRepository().FindAvailable(ctx, nil)
		if err != nil {
			return nil, err
		}

		selected, err := services.NewDriverDispatcher().Dispatch(aggregate, candidates, nil)
		if errors.Is(err, services.ErrDriverNotFound) {
			return nil, ErrNoAvailableDrivers
		}
		if err != nil {
			return nil, err
		}
		return selected, nil
	}

	named, err := uow.DriverRepository().Get(ctx, *command.DriverID())
	if err != nil {
		return nil, err
	}
	if err = named.ValidateAssignable(aggregate.ID()); err != nil {
		return nil, err
	}

	if err = aggregate.AssignDriver(named.ID(), command.Note()); err != nil {
		return nil, err
	}
	if err = named.MarkBusy(aggregate.ID()); err != nil {
		return nil, err
	}
	return named, nil
}
