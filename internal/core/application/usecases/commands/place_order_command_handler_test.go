package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, restaurantID,
		"12 Baker Street", "cod", "",
	)
	require.NoError(t, err)

	items := testItems(t) // subtotal 40
	var placed *order.Order

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	carts := new(MockCartProvider)
	restaurants := new(MockRestaurantDirectory)
	publisher := new(MockEventPublisher)

	restaurants.On("GetRestaurant", ctx, restaurantID).Return(openRestaurant(), nil).Once()
	carts.On("GetCart", ctx, customerID).Return(items, nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			placed = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	carts.On("ClearCart", ctx, customerID).Return(nil).Once()
	publisher.On("Publish", ctx, eventOfKind(ports.EventOrderPlaced)).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, carts, new(MockDiscountEvaluator), restaurants, publisher, 5)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.StatusPlaced, placed.Status())
	assert.InDelta(t, 45.0, placed.Total(), 0.0001)
	assert.Len(t, placed.History(), 1)
	orderRepo.AssertExpectations(t)
	carts.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AppliesDiscount(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, restaurantID,
		"12 Baker Street", "card", "SAVE10",
	)
	require.NoError(t, err)

	items := testItems(t) // subtotal 40
	var placed *order.Order

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	carts := new(MockCartProvider)
	discounts := new(MockDiscountEvaluator)
	restaurants := new(MockRestaurantDirectory)
	publisher := new(MockEventPublisher)

	restaurants.On("GetRestaurant", ctx, restaurantID).Return(openRestaurant(), nil).Once()
	carts.On("GetCart", ctx, customerID).Return(items, nil).Once()
	discounts.On("Evaluate", ctx, "SAVE10", restaurantID, 40.0).Return(10.0, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
		placed = args.Get(1).(*order.Order)
	}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	carts.On("ClearCart", ctx, customerID).Return(nil).Once()
	publisher.On("Publish", ctx, eventOfKind(ports.EventOrderPlaced)).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, carts, discounts, restaurants, publisher, 5)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.InDelta(t, 35.0, placed.Total(), 0.0001)
	assert.Equal(t, "SAVE10", placed.OfferCode())
	discounts.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, restaurantID,
		"12 Baker Street", "cod", "",
	)
	require.NoError(t, err)

	restaurants := new(MockRestaurantDirectory)
	restaurants.On("GetRestaurant", ctx, restaurantID).Return(openRestaurant(), nil).Once()

	carts := new(MockCartProvider)
	carts.On("GetCart", ctx, customerID).Return([]order.Item{}, nil).Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, carts, new(MockDiscountEvaluator), restaurants, new(MockEventPublisher), 5)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_RestaurantUnavailable(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cases := map[string]ports.RestaurantInfo{
		"not approved": {Approved: false, Open: true},
		"blocked":      {Approved: true, Blocked: true, Open: true},
		"closed":       {Approved: true, Open: false},
	}

	for name, info := range cases {
		t.Run(name, func(t *testing.T) {
			restaurantID := kernel.NewUUID()
			cmd, err := commands.NewPlaceOrderCommand(
				kernel.NewUUID(), customerID, restaurantID,
				"12 Baker Street", "cod", "",
			)
			require.NoError(t, err)

			restaurants := new(MockRestaurantDirectory)
			restaurants.On("GetRestaurant", ctx, restaurantID).Return(info, nil).Once()

			carts := new(MockCartProvider)
			factory := new(MockOrderUoWFactory)
			handler := commands.NewPlaceOrderCommandHandler(factory, carts, new(MockDiscountEvaluator), restaurants, new(MockEventPublisher), 5)
			err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, commands.ErrRestaurantUnavailable)
			carts.AssertNotCalled(t, "GetCart")
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestPlaceOrderCommandHandler_Handle_UsesRestaurantDeliveryFee(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, restaurantID,
		"12 Baker Street", "cod", "",
	)
	require.NoError(t, err)

	items := testItems(t) // subtotal 40
	var placed *order.Order

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	carts := new(MockCartProvider)
	restaurants := new(MockRestaurantDirectory)
	publisher := new(MockEventPublisher)

	info := openRestaurant()
	info.DeliveryFee = 8
	restaurants.On("GetRestaurant", ctx, restaurantID).Return(info, nil).Once()
	carts.On("GetCart", ctx, customerID).Return(items, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
		placed = args.Get(1).(*order.Order)
	}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	carts.On("ClearCart", ctx, customerID).Return(nil).Once()
	publisher.On("Publish", ctx, eventOfKind(ports.EventOrderPlaced)).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, carts, new(MockDiscountEvaluator), restaurants, publisher, 5)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.InDelta(t, 48.0, placed.Total(), 0.0001)
}

func TestPlaceOrderCommandHandler_Handle_DiscountError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, restaurantID,
		"12 Baker Street", "upi", "EXPIRED",
	)
	require.NoError(t, err)

	restaurants := new(MockRestaurantDirectory)
	restaurants.On("GetRestaurant", ctx, restaurantID).Return(openRestaurant(), nil).Once()

	carts := new(MockCartProvider)
	carts.On("GetCart", ctx, customerID).Return(testItems(t), nil).Once()

	discounts := new(MockDiscountEvaluator)
	discounts.On("Evaluate", ctx, "EXPIRED", restaurantID, 40.0).Return(0.0, errors.New("offer expired")).Once()

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, carts, discounts, restaurants, new(MockEventPublisher), 5)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "offer expired")
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, new(MockCartProvider), new(MockDiscountEvaluator), new(MockRestaurantDirectory), new(MockEventPublisher), 5)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewPlaceOrderCommand_Validation(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", "cod", "",
	)
	require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)

	_, err = commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Baker Street", "cheque", "",
	)
	require.Error(t, err)
}
