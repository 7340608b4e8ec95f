package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// SetDriverOnlineCommandHandler toggles a driver's availability, creating
// the directory profile lazily on first toggle. Only accounts with the
// driver role get a profile.
type SetDriverOnlineCommandHandler struct {
	uowFactory DriverUoWFactory
	accounts   ports.AccountDirectory
}

// NewSetDriverOnlineCommandHandler creates a handler for availability toggles.
func NewSetDriverOnlineCommandHandler(uowFactory DriverUoWFactory, accounts ports.AccountDirectory) SetDriverOnlineCommandHandler {
	return SetDriverOnlineCommandHandler{
		uowFactory: uowFactory,
		accounts:   accounts,
	}
}

// Handle processes the availability toggle.
func (h SetDriverOnlineCommandHandler) Handle(ctx context.Context, command SetDriverOnlineCommand) error {
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

	profile, err := uow.DriverRepository().Get(ctx, command.DriverID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		profile, err = h.createProfile(ctx, command.DriverID())
		if err != nil {
			return err
		}
		profile.SetOnline(command.Online())
		if err = uow.DriverRepository().Add(ctx, profile); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		profile.SetOnline(command.Online())
		if err = uow.DriverRepository().Update(ctx, profile); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h SetDriverOnlineCommandHandler) createProfile(ctx context.Context, driverID kernel.UUID) (*driver.Driver, error) {
	role, err := h.accounts.GetRole(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if role != kernel.RoleDriver {
		return nil, ErrActorNotAllowed
	}

	name, err := h.accounts.GetName(ctx, driverID)
	if err != nil {
		return nil, err
	}

	return driver.NewDriver(driverID, name)
}
