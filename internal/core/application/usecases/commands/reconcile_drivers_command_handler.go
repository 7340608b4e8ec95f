package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
)

// ReconcileDriversCommandHandler frees drivers whose current order is
// terminal, gone, or moved on to another driver. Each driver is repaired in
// its own transaction so one conflict never stalls the whole sweep.
type ReconcileDriversCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileDriversCommandHandler creates a handler for the driver sweep.
func NewReconcileDriversCommandHandler(uowFactory UoWFactory) ReconcileDriversCommandHandler {
	return ReconcileDriversCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
func (h ReconcileDriversCommandHandler) Handle(ctx context.Context, command ReconcileDriversCommand) error {
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

	busy, err := uow.DriverRepository().GetAllBusy(ctx)
	if err != nil {
		return err
	}
	_ = uow.Rollback(ctx)

	for _, stale := range busy {
		if err = h.reconcileOne(ctx, stale.ID()); err != nil {
			slog.WarnContext(ctx, "driver reconciliation failed",
				"driver_id", stale.ID().String(),
				"error", err)
		}
	}
	return nil
}

func (h ReconcileDriversCommandHandler) reconcileOne(ctx context.Context, driverID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile, err := uow.DriverRepository().Get(ctx, driverID)
	if err != nil {
		return err
	}
	if profile.CurrentOrderID() == nil {
		return nil
	}

	open, err := uow.OrderRepository().GetAllOpenAssignedTo(ctx, profile.ID())
	if err != nil {
		return err
	}
	if len(open) > 0 {
		return nil
	}

	profile.MarkFree()
	if err = uow.DriverRepository().Update(ctx, profile); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
