package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetDriverOnlineCommandHandler_Handle_ExistingProfile(t *testing.T) {
	ctx := t.Context()
	profile := onlineDriver(t, "Sam Rider")

	cmd, err := commands.NewSetDriverOnlineCommand(profile.ID(), false)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	driverRepo.On("Get", ctx, profile.ID()).Return(profile, nil).Once()
	driverRepo.On("Update", ctx, profile).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetDriverOnlineCommandHandler(factory, new(MockAccountDirectory))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, profile.IsOnline())
	driverRepo.AssertExpectations(t)
}

func TestSetDriverOnlineCommandHandler_Handle_LazyProfileCreation(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewSetDriverOnlineCommand(driverID, true)
	require.NoError(t, err)

	var created *driver.Driver

	driverRepo := new(MockDriverRepository)
	accounts := new(MockAccountDirectory)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	driverRepo.On("Get", ctx, driverID).Return(nil, errs.NewObjectNotFoundError("driver", driverID)).Once()
	accounts.On("GetRole", ctx, driverID).Return(kernel.RoleDriver, nil).Once()
	accounts.On("GetName", ctx, driverID).Return("Sam Rider", nil).Once()
	driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*driver.Driver)
	}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetDriverOnlineCommandHandler(factory, accounts)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.ID().IsEqual(driverID))
	assert.Equal(t, "Sam Rider", created.Name())
	assert.True(t, created.IsOnline())
	accounts.AssertExpectations(t)
}

func TestSetDriverOnlineCommandHandler_Handle_NonDriverAccountRefused(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()

	cmd, err := commands.NewSetDriverOnlineCommand(accountID, true)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	accounts := new(MockAccountDirectory)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("Get", ctx, accountID).Return(nil, errs.NewObjectNotFoundError("driver", accountID)).Once()
	accounts.On("GetRole", ctx, accountID).Return(kernel.RoleCustomer, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetDriverOnlineCommandHandler(factory, accounts)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActorNotAllowed)
	driverRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
