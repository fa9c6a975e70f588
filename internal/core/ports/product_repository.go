package ports

import (
	"context"

	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog.
// Product ids and barcodes are unique.
type ProductRepository interface {
	// Add persists a new product. Duplicate ids or barcodes fail with product.ErrDuplicateProduct.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update replaces the stored snapshot of an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id, locking it inside a transaction.
	Get(ctx context.Context, id string) (*product.Product, error)

	// GetByBarcode retrieves a product by its scanned barcode.
	GetByBarcode(ctx context.Context, barcode string) (*product.Product, error)

	// GetAll returns the whole catalog ordered by product id.
	GetAll(ctx context.Context) ([]*product.Product, error)
}

// ProductReader is the read-only side of ProductRepository. The Redis adapter
// decorates it with a cache.
type ProductReader interface {
	Get(ctx context.Context, id string) (*product.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*product.Product, error)
	GetAll(ctx context.Context) ([]*product.Product, error)
}
