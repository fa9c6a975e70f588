package postgres_test

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	postgres_adapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kernel.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.EventName())
	}
	return names
}

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.AutoMigrate(db))
}

// SetupTest ensures clean database state and a fresh event recorder before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, products").Error
	suite.Require().NoError(err)

	suite.publisher = &recordingPublisher{}
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, slog.New(slog.DiscardHandler))
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_CommitPublishesEvents verifies events leave the unit of work
// only after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesEvents() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder(suite.T(), "ORD10001")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Empty(suite.publisher.names())

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal([]string{order.EventOrderCreated}, suite.publisher.names())

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, "ORD10001")
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status())
	suite.True(testOrder.TotalAmount().IsEqual(retrieved.TotalAmount()))
}

// TestUnitOfWork_MultiRepositoryTransaction stores an order and its products atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, createTestProduct(suite.T(), "P1001", "8901234567890")))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, createTestProduct(suite.T(), "P1002", "8901234567891")))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder(suite.T(), "ORD10001")))
	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	products, err := newUow.ProductRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(products, 2)

	_, err = newUow.OrderRepository().Get(ctx, "ORD10001")
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// and publishes nothing.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder(suite.T(), "ORD10001")))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, createTestProduct(suite.T(), "P1001", "8901234567890")))
	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err := newUow.OrderRepository().Get(ctx, "ORD10001")
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = newUow.ProductRepository().Get(ctx, "P1001")
	suite.Require().Error(err, "Product should not exist after rollback")
	suite.Empty(suite.publisher.names())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateOrder() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.OrderRepository().Add(ctx, createTestOrder(suite.T(), "ORD10001")))
	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err := second.OrderRepository().Add(ctx, createTestOrder(suite.T(), "ORD10001"))
	suite.Require().ErrorIs(err, order.ErrOrderExists)
	suite.Require().NoError(second.Rollback(ctx))
}

// TestUnitOfWork_RepositoryIsolation verifies that uncommitted orders are
// invisible to other units of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, createTestOrder(suite.T(), "ORD1")))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, createTestOrder(suite.T(), "ORD2")))

	_, err := uow1.OrderRepository().Get(ctx, "ORD2")
	suite.Require().Error(err, "UOW1 should not see ORD2")
	_, err = uow2.OrderRepository().Get(ctx, "ORD1")
	suite.Require().Error(err, "UOW2 should not see ORD1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, "ORD1")
	suite.Require().NoError(err, "ORD1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, "ORD2")
	suite.Require().Error(err, "ORD2 should not persist after rollback")
}

// TestUnitOfWork_ConcurrentPicksAreSerialized races pick commands on one order;
// the row lock lets each line be picked exactly once.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentPicksAreSerialized() {
	ctx := context.Background()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, createTestOrder(suite.T(), "ORD10001")))
	suite.Require().NoError(seed.Commit(ctx))

	handler := commands.NewPickItemCommandHandler(orderUoWFactory{factory: suite.factory})

	const workers = 10
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			productID := "P1001"
			if i%2 == 1 {
				productID = "P1002"
			}
			cmd, err := commands.NewPickItemCommand("ORD10001", productID, 1)
			if err != nil {
				return
			}
			if _, err := handler.Handle(ctx, cmd); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	suite.Equal(int32(2), succeeded.Load())

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, "ORD10001")
	suite.Require().NoError(err)
	suite.Equal(order.Picked, retrieved.Status())
}

type orderUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW { return f.factory.Create() }

func createTestOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("John Smith", "john@example.com", "123 Main St")
	if err != nil {
		t.Fatal(err)
	}
	first, err := order.NewItem("P1001", 2, kernel.MustMoney("49.99"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := order.NewItem("P1002", 1, kernel.MustMoney("79.99"))
	if err != nil {
		t.Fatal(err)
	}
	o, err := order.NewOrder(id, customer, time.Now().UTC().Truncate(time.Microsecond), order.Standard,
		[]order.Item{first, second})
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func createTestProduct(t *testing.T, id, barcode string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, barcode, "Wireless Headphones", "Electronics",
		kernel.MustParseLocation("A-12-3"), 45, kernel.MustMoney("49.99"))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
