package commands

import (
	"context"

	"warehouse/internal/core/domain/model/product"
)

// AdjustStockCommandHandler applies a stock adjustment under the product's lock.
// Removing more than is on the shelf leaves the stock at zero.
type AdjustStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewAdjustStockCommandHandler(uowFactory ProductUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the adjusted product or product.ErrProductNotFound.
func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	current, err := getProduct(ctx, productRepo, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	next, err := current.AdjustStock(cmd.Adjustment())
	if err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return next, nil
}
