package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/in/seed"
	"warehouse/internal/adapters/out/cache"
	"warehouse/internal/adapters/out/events"
	"warehouse/internal/adapters/out/kafka"
	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot owns the adapters chosen by Config and builds the command
// and query handlers on top of them.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	uowFactory    ports.UnitOfWorkFactory
	orderReader   ports.OrderReader
	productReader ports.ProductReader
	publisher     ports.EventPublisher
	activityFeed  *memory.ActivityFeed

	closers []func() error
}

func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:       config,
		logger:       logger,
		activityFeed: memory.NewActivityFeed(config.ActivityFeedSize),
	}

	sinks := []events.Sink{{Name: "activity_feed", Publisher: root.activityFeed}}

	if config.KafkaHost != "" {
		publisher, err := kafka.NewPublisher(strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic, logger)
		if err != nil {
			return nil, root.closeAfter(err)
		}
		root.closers = append(root.closers, func() error {
			publisher.Close()
			return nil
		})
		sinks = append(sinks, events.Sink{Name: "kafka", Publisher: publisher})
	}

	var newFactory func(ports.EventPublisher) ports.UnitOfWorkFactory
	switch config.StorageDriver {
	case "", StorageMemory:
		store := memory.NewStore()
		root.orderReader = store.OrderReader()
		root.productReader = store.ProductReader()
		newFactory = func(publisher ports.EventPublisher) ports.UnitOfWorkFactory {
			return memory.NewUnitOfWorkFactory(store, publisher, logger)
		}
	case StoragePostgres:
		db, err := openPostgres(config)
		if err != nil {
			return nil, root.closeAfter(err)
		}
		root.closers = append(root.closers, func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
		root.orderReader = orderrepo.NewGormOrderReader(db)
		root.productReader = productrepo.NewGormProductReader(db)
		newFactory = func(publisher ports.EventPublisher) ports.UnitOfWorkFactory {
			return postgres.NewGormUnitOfWorkFactory(db, publisher, logger)
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}

	if config.RedisAddr != "" {
		client, err := cache.Connect(ctx, cache.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err != nil {
			return nil, root.closeAfter(err)
		}
		root.closers = append(root.closers, client.Close)

		cached := cache.NewCachedProductReader(root.productReader, client, config.ProductCacheTTL, logger)
		root.productReader = cached
		sinks = append(sinks, events.Sink{Name: "product_cache", Publisher: cached})
	}

	root.publisher = events.NewFanOutPublisher(logger, sinks...)
	root.uowFactory = newFactory(root.publisher)

	logger.InfoContext(ctx, "Composition root ready",
		"storage", config.StorageDriver,
		"redis", config.RedisAddr != "",
		"kafka", config.KafkaHost != "")
	return root, nil
}

func openPostgres(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(config.PostgresDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := postgres.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate postgres schema: %w", err)
	}
	return db, nil
}

// Close releases connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) closeAfter(err error) error {
	return errors.Join(err, c.Close())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreatePickItemCommandHandler() commands.PickItemCommandHandler {
	return commands.NewPickItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVerifyItemCommandHandler() commands.VerifyItemCommandHandler {
	return commands.NewVerifyItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVerifyItemByBarcodeCommandHandler() commands.VerifyItemByBarcodeCommandHandler {
	return commands.NewVerifyItemByBarcodeCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderPickingCommandHandler() commands.CompleteOrderPickingCommandHandler {
	return commands.NewCompleteOrderPickingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderPackingCommandHandler() commands.CompleteOrderPackingCommandHandler {
	return commands.NewCompleteOrderPackingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelProcessCommandHandler() commands.CancelProcessCommandHandler {
	return commands.NewCancelProcessCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDetectLowStockCommandHandler() commands.DetectLowStockCommandHandler {
	return commands.NewDetectLowStockCommandHandler(c.productReader, c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetOrderMetricsQueryHandler() queries.GetOrderMetricsQueryHandler {
	return queries.NewGetOrderMetricsQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.productReader)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.productReader)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.productReader)
}

func (c *CompositionRoot) CreateGetActivityFeedQueryHandler() queries.GetActivityFeedQueryHandler {
	return queries.NewGetActivityFeedQueryHandler(c.activityFeed)
}

func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:         c.CreateCreateOrderCommandHandler(),
			PickItem:            c.CreatePickItemCommandHandler(),
			VerifyItem:          c.CreateVerifyItemCommandHandler(),
			VerifyItemByBarcode: c.CreateVerifyItemByBarcodeCommandHandler(),
			CompletePicking:     c.CreateCompleteOrderPickingCommandHandler(),
			CompletePacking:     c.CreateCompleteOrderPackingCommandHandler(),
			CancelProcess:       c.CreateCancelProcessCommandHandler(),
			ShipOrder:           c.CreateShipOrderCommandHandler(),
			AddProduct:          c.CreateAddProductCommandHandler(),
			AdjustStock:         c.CreateAdjustStockCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrder:            c.CreateGetOrderQueryHandler(),
			GetAllOrders:        c.CreateGetAllOrdersQueryHandler(),
			GetOrdersByStatus:   c.CreateGetOrdersByStatusQueryHandler(),
			GetPendingOrders:    c.CreateGetPendingOrdersQueryHandler(),
			GetOrderMetrics:     c.CreateGetOrderMetricsQueryHandler(),
			GetProduct:          c.CreateGetProductQueryHandler(),
			GetAllProducts:      c.CreateGetAllProductsQueryHandler(),
			GetLowStockProducts: c.CreateGetLowStockProductsQueryHandler(),
			GetActivityFeed:     c.CreateGetActivityFeedQueryHandler(),
		},
		c.config.LowStockThreshold,
		c.logger,
	)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDetectLowStockCommandHandler(),
		c.CreateGetOrderMetricsQueryHandler(),
		jobs.Schedules{
			LowStockThreshold: c.config.LowStockThreshold,
			LowStock:          c.config.LowStockSchedule,
			Backlog:           c.config.BacklogSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) NewSeedLoader() *seed.Loader {
	return seed.NewLoader(
		c.CreateAddProductCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreatePickItemCommandHandler(),
		c.CreateVerifyItemCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
