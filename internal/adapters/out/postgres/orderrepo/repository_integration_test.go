package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pizzabot/internal/adapters/out/postgres/orderrepo"
	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.UpdateDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_updates RESTART IDENTITY CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DraftOrder_PersistsCreationAuditRow() {
	ctx := context.Background()

	testOrder := suite.newDraftOrder(order.DeliveryTypeDelivery)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// The database assigned an id and wrote it back
	suite.NotZero(testOrder.ID())
	suite.assertOrderCount(1)

	// The initial draft audit row was persisted with the order
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	updates := retrieved.Updates()
	suite.Require().Len(updates, 1)
	suite.Equal(order.StatusDraft, updates[0].Status())
	suite.Equal(order.CreatedMessage, updates[0].Message())
	suite.NotZero(updates[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 424242)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PendingItemsAndStatus_Persisted() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(2)
	testOrder := suite.addDraftOrder(ctx, order.DeliveryTypeDelivery)

	// Mutate the loaded aggregate: add items and place the order
	pizza, err := order.NewPizzaItem("margherita", "Margherita", "large", 2, 1500)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(pizza))

	extra, err := order.NewExtraItem("coke", "Coke (500ml)", 1, 150)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(extra))

	suite.Require().NoError(testOrder.SetStatus(order.StatusPlaced, "Order placed"))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// Pending children received database ids
	suite.NotZero(pizza.ID())
	suite.NotZero(extra.ID())

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPlaced, retrieved.Status())

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	// Insertion order survives the round trip
	suite.Equal("Margherita", items[0].Name())
	suite.Equal("large", items[0].Size())
	suite.Equal(2, items[0].Qty())
	suite.Equal(1500, items[0].UnitPrice())
	suite.Equal("Coke (500ml)", items[1].Name())
	suite.Equal("", items[1].Size())

	updates := retrieved.Updates()
	suite.Require().Len(updates, 2)
	suite.Equal(order.StatusDraft, updates[0].Status())
	suite.Equal(order.StatusPlaced, updates[1].Status())
	suite.Equal("Order placed", updates[1].Message())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RepeatedStatus_AppendsAnotherAuditRow() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(3)
	testOrder := suite.addDraftOrder(ctx, order.DeliveryTypePickup)

	suite.Require().NoError(testOrder.SetStatus(order.StatusPreparing, "kitchen started"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.SetStatus(order.StatusPreparing, "still preparing"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	updates := retrieved.Updates()
	suite.Require().Len(updates, 3)
	suite.Equal("kitchen started", updates[1].Message())
	suite.Equal("still preparing", updates[2].Message())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost, err := order.RestoreOrder(
		999999, nil, order.StatusDraft, order.DeliveryTypePickup,
		"", "", time.Now().UTC(), time.Now().UTC(), nil, nil,
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemoveItem_ExistingAndAbsent() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(2)
	testOrder := suite.addDraftOrder(ctx, order.DeliveryTypeDelivery)

	pizza, err := order.NewPizzaItem("pepperoni", "Pepperoni", "medium", 1, 1300)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(pizza))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(suite.repository.RemoveItem(ctx, pizza.ID()))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.Items())

	// Removing the same id again is a no-op
	suite.Require().NoError(suite.repository.RemoveItem(ctx, pizza.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersAndOrdersById() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(6)

	first := suite.addDraftOrder(ctx, order.DeliveryTypeDelivery)
	second := suite.addDraftOrder(ctx, order.DeliveryTypePickup)
	third := suite.addDraftOrder(ctx, order.DeliveryTypeDelivery)

	suite.Require().NoError(first.SetStatus(order.StatusPlaced, ""))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.SetStatus(order.StatusPreparing, ""))
	suite.Require().NoError(suite.repository.Update(ctx, second))

	suite.Require().NoError(third.SetStatus(order.StatusDelivered, ""))
	suite.Require().NoError(suite.repository.Update(ctx, third))

	inKitchen, err := suite.repository.GetAllInStatus(ctx, order.StatusPlaced, order.StatusPreparing)
	suite.Require().NoError(err)

	suite.Require().Len(inKitchen, 2)
	suite.Equal(first.ID(), inKitchen[0].ID())
	suite.Equal(second.ID(), inKitchen[1].ID())
	// History is loaded with each order
	suite.Len(inKitchen[0].Updates(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Once()
	suite.addDraftOrder(ctx, order.DeliveryTypePickup)

	baking, err := suite.repository.GetAllInStatus(ctx, order.StatusBaking)
	suite.Require().NoError(err)
	suite.Empty(baking)

	suite.tracker.AssertExpectations(suite.T())
}

// newDraftOrder creates an anonymous draft order.
func (suite *OrderRepositoryIntegrationTestSuite) newDraftOrder(dt order.DeliveryType) *order.Order {
	testOrder, err := order.NewOrder(nil, dt, "12 Main Street", "")
	suite.Require().NoError(err)
	return testOrder
}

// addDraftOrder creates a draft order and persists it. The caller registers
// the tracker expectation covering the Add call.
func (suite *OrderRepositoryIntegrationTestSuite) addDraftOrder(
	ctx context.Context, dt order.DeliveryType,
) *order.Order {
	testOrder := suite.newDraftOrder(dt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
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
