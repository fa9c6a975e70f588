package memory

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

func orderKey(id string) string     { return "order:" + id }
func productKey(id string) string   { return "product:" + id }
func barcodeKey(code string) string { return "barcode:" + code }

// orderRepository reads through the unit of work's staged snapshots and locks
// every order it touches until the unit of work ends.
type orderRepository struct {
	uow    *UnitOfWork
	reader orderReader
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := r.writable(aggregate); err != nil {
		return err
	}

	id := aggregate.ID()
	if err := r.uow.lock(ctx, orderKey(id)); err != nil {
		return err
	}

	if _, staged := r.uow.orders[id]; staged {
		return fmt.Errorf("%w: %s", order.ErrOrderExists, id)
	}
	if _, exists := r.uow.store.order(id); exists {
		return fmt.Errorf("%w: %s", order.ErrOrderExists, id)
	}

	r.uow.orders[id] = stagedOrder{order: aggregate, isNew: true}
	r.uow.newOrderIDs = append(r.uow.newOrderIDs, id)
	r.uow.TrackAggregate(id, aggregate)
	return nil
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := r.writable(aggregate); err != nil {
		return err
	}

	id := aggregate.ID()
	if err := r.uow.lock(ctx, orderKey(id)); err != nil {
		return err
	}

	staged, isStaged := r.uow.orders[id]
	if !isStaged {
		if _, exists := r.uow.store.order(id); !exists {
			return errs.NewObjectNotFoundError("orderId", id)
		}
	}

	r.uow.orders[id] = stagedOrder{order: aggregate, isNew: staged.isNew}
	r.uow.TrackAggregate(id, aggregate)
	return nil
}

// Get returns the staged snapshot when this unit of work already changed the
// order, the committed one otherwise.
func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := r.uow.lock(ctx, orderKey(id)); err != nil {
		return nil, err
	}
	if staged, ok := r.uow.orders[id]; ok {
		return staged.order, nil
	}
	return r.reader.Get(ctx, id)
}

func (r *orderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.reader.GetAll(ctx)
}

func (r *orderRepository) GetByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	return r.reader.GetByStatus(ctx, statuses...)
}

func (r *orderRepository) writable(aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return aggregate.CheckInvariants()
}

// productRepository mirrors orderRepository for the catalog. Barcodes are
// locked on Add so two products can never claim the same code.
type productRepository struct {
	uow    *UnitOfWork
	reader productReader
}

func (r *productRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := r.writable(aggregate); err != nil {
		return err
	}

	id, barcode := aggregate.ID(), aggregate.Barcode()
	if err := r.uow.lock(ctx, productKey(id)); err != nil {
		return err
	}
	if err := r.uow.lock(ctx, barcodeKey(barcode)); err != nil {
		return err
	}

	if _, staged := r.uow.products[id]; staged {
		return fmt.Errorf("%w: id %s", product.ErrDuplicateProduct, id)
	}
	if _, exists := r.uow.store.product(id); exists {
		return fmt.Errorf("%w: id %s", product.ErrDuplicateProduct, id)
	}
	if _, exists := r.uow.store.productIDByBarcode(barcode); exists {
		return fmt.Errorf("%w: barcode %s", product.ErrDuplicateProduct, barcode)
	}
	for _, staged := range r.uow.products {
		if staged.product.Barcode() == barcode {
			return fmt.Errorf("%w: barcode %s", product.ErrDuplicateProduct, barcode)
		}
	}

	r.uow.products[id] = stagedProduct{product: aggregate, isNew: true}
	r.uow.TrackAggregate(id, aggregate)
	return nil
}

func (r *productRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := r.writable(aggregate); err != nil {
		return err
	}

	id := aggregate.ID()
	if err := r.uow.lock(ctx, productKey(id)); err != nil {
		return err
	}

	staged, isStaged := r.uow.products[id]
	if !isStaged {
		current, exists := r.uow.store.product(id)
		if !exists {
			return errs.NewObjectNotFoundError("productId", id)
		}
		if current.Barcode() != aggregate.Barcode() {
			return errs.NewValueIsInvalidErrorWithCause("barcode",
				fmt.Errorf("barcode of %s cannot change", id))
		}
	}

	r.uow.products[id] = stagedProduct{product: aggregate, isNew: staged.isNew}
	r.uow.TrackAggregate(id, aggregate)
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	if err := r.uow.lock(ctx, productKey(id)); err != nil {
		return nil, err
	}
	if staged, ok := r.uow.products[id]; ok {
		return staged.product, nil
	}
	return r.reader.Get(ctx, id)
}

// GetByBarcode resolves committed barcodes without locking the product.
func (r *productRepository) GetByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	return r.reader.GetByBarcode(ctx, barcode)
}

func (r *productRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	return r.reader.GetAll(ctx)
}

func (r *productRepository) writable(aggregate *product.Product) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return aggregate.Validate()
}
