package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createPlacedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createPlacedOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.RestaurantID(), retrieved.RestaurantID())
	suite.Equal(order.StatusPlaced, retrieved.Status())
	suite.Equal(order.AcceptanceNone, retrieved.DriverAcceptance())
	suite.Nil(retrieved.DriverID())
	suite.Equal(original.DeliveryAddress(), retrieved.DeliveryAddress())
	suite.Equal(order.PaymentCashOnDelivery, retrieved.PaymentMethod())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.Equal(1, retrieved.Version())

	suite.Require().Len(retrieved.Items(), len(original.Items()))
	for i, item := range retrieved.Items() {
		suite.Equal(original.Items()[i].FoodID(), item.FoodID())
		suite.Equal(original.Items()[i].Name(), item.Name())
		suite.InDelta(original.Items()[i].Price(), item.Price(), 0.001)
		suite.Equal(original.Items()[i].Quantity(), item.Quantity())
	}

	suite.InDelta(original.Total(), retrieved.Total(), 0.001)

	suite.Require().Len(retrieved.History(), 1)
	suite.Equal(order.StatusPlaced, retrieved.History()[0].Status)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndAssignment() {
	ctx := context.Background()

	testOrder := suite.createPlacedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignDriver(driverID, "Auto-assigned"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusConfirmed, retrieved.Status())
	suite.Equal(order.AcceptancePending, retrieved.DriverAcceptance())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Equal(driverID, *retrieved.DriverID())
	suite.NotNil(retrieved.ConfirmedAt())
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	testOrder := suite.createPlacedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two copies loaded at version 1.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.TransitionTo(order.StatusConfirmed, ""))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.TransitionTo(order.StatusCancelled, "Changed my mind"))
	err = suite.repository.Update(ctx, second)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The first writer's state won.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearsDriverAssignment() {
	ctx := context.Background()

	testOrder := suite.createPlacedOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignDriver(driverID, ""))
	suite.Require().NoError(testOrder.DeclineAssignment(driverID))
	testOrder.ClearAssignment()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Nil(retrieved.DriverID(), "driver_id column should be cleared to NULL")
	suite.Equal(order.AcceptanceNone, retrieved.DriverAcceptance())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllOpenAssignedTo_FiltersTerminalAndOtherDrivers() {
	ctx := context.Background()
	driverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	openOrder := suite.createPlacedOrder()
	suite.Require().NoError(openOrder.AssignDriver(driverID, ""))
	suite.Require().NoError(suite.repository.Add(ctx, openOrder))

	deliveredOrder := suite.createPlacedOrder()
	suite.Require().NoError(deliveredOrder.AssignDriver(driverID, ""))
	suite.Require().NoError(deliveredOrder.AcceptAssignment(driverID))
	suite.Require().NoError(deliveredOrder.AdvanceByDriver(driverID, order.StatusOutForDelivery, ""))
	suite.Require().NoError(deliveredOrder.AdvanceByDriver(driverID, order.StatusDelivered, ""))
	suite.Require().NoError(suite.repository.Add(ctx, deliveredOrder))

	otherOrder := suite.createPlacedOrder()
	suite.Require().NoError(otherOrder.AssignDriver(otherDriverID, ""))
	suite.Require().NoError(suite.repository.Add(ctx, otherOrder))

	unassignedOrder := suite.createPlacedOrder()
	suite.Require().NoError(suite.repository.Add(ctx, unassignedOrder))

	openOrders, err := suite.repository.GetAllOpenAssignedTo(ctx, driverID)
	suite.Require().NoError(err)

	suite.Require().Len(openOrders, 1)
	suite.Equal(openOrder.ID(), openOrders[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createPlacedOrder builds a fresh placed cash-on-delivery order with two items.
func (suite *OrderRepositoryIntegrationTestSuite) createPlacedOrder() *order.Order {
	margherita, err := order.NewItem(kernel.NewUUID(), "Margherita", 12.5, 2)
	suite.Require().NoError(err)
	cola, err := order.NewItem(kernel.NewUUID(), "Cola", 3, 1)
	suite.Require().NoError(err)

	items := []order.Item{margherita, cola}
	pricing, err := order.NewPricing(order.Subtotal(items), 5, 0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		items,
		pricing,
		"221B Baker Street",
		order.PaymentCashOnDelivery,
		"",
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
