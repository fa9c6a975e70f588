package commands

import (
	"context"

	"warehouse/internal/core/domain/model/product"
)

// AddProductCommandHandler stores a new catalog entry.
// Duplicate ids or barcodes fail with product.ErrDuplicateProduct.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Add(ctx, cmd.Product()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cmd.Product(), nil
}
