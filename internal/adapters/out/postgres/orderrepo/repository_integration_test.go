package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of ports.AggregateTracker.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate ports.EventSource) {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

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
	testOrder := suite.createTestOrder("ORD10001", order.Standard, time.Now())

	suite.tracker.On("TrackAggregate", "ORD10001", testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.ItemDTO{}, 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsOrderExists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD10001", order.Standard, time.Now())
	suite.tracker.On("TrackAggregate", "ORD10001", testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	duplicate := suite.createTestOrder("ORD10001", order.Express, time.Now())
	err := suite.repository.Add(ctx, duplicate)

	suite.Require().ErrorIs(err, order.ErrOrderExists)
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	orderDate := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	original := suite.createTestOrder("ORD10001", order.Express, orderDate)
	suite.tracker.On("TrackAggregate", "ORD10001", original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, "ORD10001")
	suite.Require().NoError(err)

	suite.Equal("ORD10001", retrieved.ID())
	suite.Equal(orderDate, retrieved.OrderDate())
	suite.Equal(order.Express, retrieved.Priority())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal("John Smith", retrieved.Customer().Name())
	suite.Equal("179.97", retrieved.TotalAmount().String())
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("P1001", retrieved.Items()[0].ProductID())
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.Equal("P1002", retrieved.Items()[1].ProductID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), "ORD404")

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StoresItemAndOrderStatus() {
	ctx := context.Background()
	original := suite.createTestOrder("ORD10001", order.Standard, time.Now())
	suite.tracker.On("TrackAggregate", "ORD10001", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	picked, err := original.PickItem("P1001", 2)
	suite.Require().NoError(err)
	picked, err = picked.PickItem("P1002", 1)
	suite.Require().NoError(err)
	verified, err := picked.VerifyItem("P1001")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, verified))

	retrieved, err := suite.repository.Get(ctx, "ORD10001")
	suite.Require().NoError(err)
	suite.Equal(order.Picked, retrieved.Status())
	suite.Equal(order.ItemVerified, retrieved.Items()[0].Status())
	suite.Equal(order.ItemPicked, retrieved.Items()[1].Status())
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	nonExistent := suite.createTestOrder("ORD404", order.Standard, time.Now())

	err := suite.repository.Update(context.Background(), nonExistent)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByStatus_ReturnsMatchingOrdersInIntakeOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	for _, id := range []string{"ORD3", "ORD1", "ORD2"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(id, order.Standard, time.Now())))
	}
	current, err := suite.repository.Get(ctx, "ORD1")
	suite.Require().NoError(err)
	processing, err := current.PickItem("P1001", 1)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, processing))

	pending, err := suite.repository.GetByStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Equal([]string{"ORD3", "ORD2"}, ids(pending))

	queue, err := suite.repository.GetByStatus(ctx, order.Pending, order.Processing)
	suite.Require().NoError(err)
	suite.Equal([]string{"ORD3", "ORD1", "ORD2"}, ids(queue))

	shipped, err := suite.repository.GetByStatus(ctx, order.Shipped)
	suite.Require().NoError(err)
	suite.Empty(shipped)

	all, err := orderrepo.NewGormOrderReader(suite.db).GetAll(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"ORD3", "ORD1", "ORD2"}, ids(all))
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id string, priority order.Priority, date time.Time) *order.Order {
	customer, err := order.NewCustomer("John Smith", "john@example.com", "123 Main St")
	suite.Require().NoError(err)
	first, err := order.NewItem("P1001", 2, kernel.MustMoney("49.99"))
	suite.Require().NoError(err)
	second, err := order.NewItem("P1002", 1, kernel.MustMoney("79.99"))
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, customer, date.UTC().Truncate(time.Microsecond), priority, []order.Item{first, second})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func ids(orders []*order.Order) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID())
	}
	return result
}

func TestOrderRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
