package queries

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// GetProductQueryHandler returns a single product or product.ErrProductNotFound.
// The reader may be the Redis cached catalog.
type GetProductQueryHandler struct {
	products ports.ProductReader
}

func NewGetProductQueryHandler(products ports.ProductReader) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var (
		p   *product.Product
		err error
		key string
	)
	if query.ByBarcode() {
		key = "barcode " + query.Barcode()
		p, err = h.products.GetByBarcode(ctx, query.Barcode())
	} else {
		key = query.ProductID()
		p, err = h.products.Get(ctx, query.ProductID())
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ProductResponse{}, fmt.Errorf("%w: %s", product.ErrProductNotFound, key)
	}
	if err != nil {
		return ProductResponse{}, err
	}
	return NewProductResponse(p), nil
}
