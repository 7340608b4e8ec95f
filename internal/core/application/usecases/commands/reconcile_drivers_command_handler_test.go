package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileDriversCommandHandler_Handle_FreesStaleDriver(t *testing.T) {
	ctx := t.Context()

	stale := onlineDriver(t, "Stale")
	closedOrder := placedOrder(t, stale.ID(), stale.ID())
	require.NoError(t, stale.MarkBusy(closedOrder.ID()))

	working := onlineDriver(t, "Working")
	openOrder := placedOrder(t, working.ID(), working.ID())
	require.NoError(t, working.MarkBusy(openOrder.ID()))

	driverRepo := new(MockDriverRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("OrderRepository").Return(orderRepo)

	driverRepo.On("GetAllBusy", ctx).Return([]*driver.Driver{stale, working}, nil).Once()
	driverRepo.On("Get", ctx, stale.ID()).Return(stale, nil).Once()
	driverRepo.On("Get", ctx, working.ID()).Return(working, nil).Once()
	orderRepo.On("GetAllOpenAssignedTo", ctx, stale.ID()).Return([]*order.Order{}, nil).Once()
	orderRepo.On("GetAllOpenAssignedTo", ctx, working.ID()).Return([]*order.Order{openOrder}, nil).Once()
	driverRepo.On("Update", ctx, stale).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	handler := commands.NewReconcileDriversCommandHandler(factory)
	cmd := commands.NewReconcileDriversCommand()
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, stale.CurrentOrderID(), "driver tied to a closed order is freed")
	require.NotNil(t, working.CurrentOrderID())
	assert.True(t, working.CurrentOrderID().IsEqual(openOrder.ID()), "driver with open work keeps the tie")
	driverRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
