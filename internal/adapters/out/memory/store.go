// Package memory provides the in-process store of the fulfillment engine.
//
// Store holds the committed order and product snapshots. Writers go through a
// UnitOfWork: every order or product a unit of work loads is locked until the
// unit of work commits or rolls back, and commit swaps in all staged snapshots
// at once. Readers see committed snapshots only and never wait for a lock.
//
// Snapshots are immutable values, so the store hands out the stored pointers
// without copying.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// Store is the committed state shared by all units of work.
type Store struct {
	mu sync.RWMutex

	orders   map[string]*order.Order
	orderIDs []string // intake order

	products map[string]*product.Product
	barcodes map[string]string // barcode -> product id

	locks *keyedLocks
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:   make(map[string]*order.Order),
		products: make(map[string]*product.Product),
		barcodes: make(map[string]string),
		locks:    newKeyedLocks(),
	}
}

// OrderReader returns the read side of the order collection.
func (s *Store) OrderReader() ports.OrderReader {
	return orderReader{store: s}
}

// ProductReader returns the read side of the catalog.
func (s *Store) ProductReader() ports.ProductReader {
	return productReader{store: s}
}

func (s *Store) order(id string) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) product(id string) (*product.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *Store) productIDByBarcode(barcode string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.barcodes[barcode]
	return id, ok
}

type orderReader struct {
	store *Store
}

func (r orderReader) Get(_ context.Context, id string) (*order.Order, error) {
	o, ok := r.store.order(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return o, nil
}

func (r orderReader) GetAll(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.store.orderIDs))
	for _, id := range r.store.orderIDs {
		orders = append(orders, r.store.orders[id])
	}
	return orders, nil
}

func (r orderReader) GetByStatus(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, id := range r.store.orderIDs {
		o := r.store.orders[id]
		if slices.Contains(statuses, o.Status()) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

type productReader struct {
	store *Store
}

func (r productReader) Get(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.store.product(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("productId", id)
	}
	return p, nil
}

func (r productReader) GetByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	id, ok := r.store.productIDByBarcode(barcode)
	if !ok {
		return nil, errs.NewObjectNotFoundError("barcode", barcode)
	}
	return r.Get(ctx, id)
}

func (r productReader) GetAll(_ context.Context) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*product.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		products = append(products, p)
	}
	slices.SortFunc(products, func(a, b *product.Product) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return products, nil
}
