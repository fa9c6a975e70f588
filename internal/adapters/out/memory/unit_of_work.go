package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type trackedAggregate struct {
	ID        string
	Aggregate ports.EventSource
}

// UnitOfWorkFactory creates units of work over one Store. Committed domain
// events go to publisher; publishing failures are logged.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory_unit_of_work"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork stages order and product snapshots and applies them atomically on Commit.
// A UnitOfWork is not safe for concurrent use; create one per command.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	active bool
	held   []string

	orders      map[string]stagedOrder
	newOrderIDs []string
	products    map[string]stagedProduct

	trackedAggregates []trackedAggregate
}

type stagedOrder struct {
	order *order.Order
	isNew bool
}

type stagedProduct struct {
	product *product.Product
	isNew   bool
}

// Begin starts a transaction. Calling it again on an active unit of work does nothing.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.active = true
	uow.orders = make(map[string]stagedOrder)
	uow.newOrderIDs = nil
	uow.products = make(map[string]stagedProduct)
	uow.trackedAggregates = nil
	return nil
}

// Commit applies every staged snapshot under the store lock, releases the
// aggregate locks and then publishes the tracked domain events.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	if err := uow.apply(); err != nil {
		uow.end()
		return err
	}

	tracked := uow.trackedAggregates
	uow.end()
	uow.publish(ctx, tracked)
	return nil
}

// Rollback discards staged snapshots and releases the aggregate locks.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.end()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow, reader: orderReader{store: uow.store}}
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: uow, reader: productReader{store: uow.store}}
}

// TrackAggregate registers an aggregate whose events are published after commit.
func (uow *UnitOfWork) TrackAggregate(id string, aggregate ports.EventSource) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// lock takes the store lock for key once per unit of work.
func (uow *UnitOfWork) lock(ctx context.Context, key string) error {
	if !uow.active {
		return nil
	}
	for _, held := range uow.held {
		if held == key {
			return nil
		}
	}
	if err := uow.store.locks.Lock(ctx, key); err != nil {
		return err
	}
	uow.held = append(uow.held, key)
	return nil
}

func (uow *UnitOfWork) apply() error {
	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, staged := range uow.orders {
		if staged.isNew {
			if _, exists := s.orders[id]; exists {
				return fmt.Errorf("%w: %s", order.ErrOrderExists, id)
			}
		}
	}
	for id, staged := range uow.products {
		if staged.isNew {
			if _, exists := s.products[id]; exists {
				return fmt.Errorf("%w: id %s", product.ErrDuplicateProduct, id)
			}
			if _, exists := s.barcodes[staged.product.Barcode()]; exists {
				return fmt.Errorf("%w: barcode %s", product.ErrDuplicateProduct, staged.product.Barcode())
			}
		}
	}

	for id, staged := range uow.orders {
		s.orders[id] = staged.order
	}
	s.orderIDs = append(s.orderIDs, uow.newOrderIDs...)

	for id, staged := range uow.products {
		s.products[id] = staged.product
		s.barcodes[staged.product.Barcode()] = id
	}
	return nil
}

func (uow *UnitOfWork) end() {
	for i := len(uow.held) - 1; i >= 0; i-- {
		uow.store.locks.Unlock(uow.held[i])
	}
	uow.held = nil
	uow.active = false
	uow.orders = nil
	uow.newOrderIDs = nil
	uow.products = nil
	uow.trackedAggregates = nil
}

func (uow *UnitOfWork) publish(ctx context.Context, tracked []trackedAggregate) {
	if uow.publisher == nil {
		return
	}
	for _, t := range tracked {
		events := t.Aggregate.DomainEvents()
		if len(events) == 0 {
			continue
		}
		if err := uow.publisher.Publish(ctx, events...); err != nil {
			uow.logger.ErrorContext(ctx, "Failed to publish domain events",
				"aggregate_id", t.ID, "events", len(events), "error", err)
		}
	}
}
