package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOpenAssignedTo(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindAvailable(ctx context.Context, exclude []kernel.UUID) ([]*driver.Driver, error) {
	args := m.Called(ctx, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllBusy(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockCartProvider struct{ mock.Mock }

func (m *MockCartProvider) GetCart(ctx context.Context, customerID kernel.UUID) ([]order.Item, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Item), args.Error(1)
}

func (m *MockCartProvider) ClearCart(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockDiscountEvaluator struct{ mock.Mock }

func (m *MockDiscountEvaluator) Evaluate(ctx context.Context, code string, restaurantID kernel.UUID, subtotal float64) (float64, error) {
	args := m.Called(ctx, code, restaurantID, subtotal)
	return args.Get(0).(float64), args.Error(1)
}

type MockRestaurantDirectory struct{ mock.Mock }

func (m *MockRestaurantDirectory) GetRestaurant(ctx context.Context, restaurantID kernel.UUID) (ports.RestaurantInfo, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(ports.RestaurantInfo), args.Error(1)
}

func openRestaurant() ports.RestaurantInfo {
	return ports.RestaurantInfo{Approved: true, Open: true}
}

type MockAccountDirectory struct{ mock.Mock }

func (m *MockAccountDirectory) GetRole(ctx context.Context, accountID kernel.UUID) (kernel.Role, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(kernel.Role), args.Error(1)
}

func (m *MockAccountDirectory) GetName(ctx context.Context, accountID kernel.UUID) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func eventOfKind(kind string) interface{} {
	return mock.MatchedBy(func(event ports.OrderEvent) bool {
		return event.Kind == kind
	})
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	first, err := order.NewItem(kernel.NewUUID(), "Margherita", 15, 2)
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), "Garlic Bread", 10, 1)
	require.NoError(t, err)
	return []order.Item{first, second}
}

func placedOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	items := testItems(t)
	pricing, err := order.NewPricing(order.Subtotal(items), 5, 0)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customerID, restaurantID,
		items, pricing, "12 Baker Street", order.PaymentCashOnDelivery, "",
	)
	require.NoError(t, err)
	return aggregate
}

func onlineDriver(t *testing.T, name string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), name)
	require.NoError(t, err)
	d.SetOnline(true)
	return d
}

func mustActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}
