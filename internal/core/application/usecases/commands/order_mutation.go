package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// getOrder loads an order and reports unknown ids as order.ErrOrderNotFound.
func getOrder(ctx context.Context, repo ports.OrderRepository, orderID string) (*order.Order, error) {
	o, err := repo.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", order.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// getProduct loads a product and reports unknown ids as product.ErrProductNotFound.
func getProduct(ctx context.Context, repo ports.ProductRepository, productID string) (*product.Product, error) {
	p, err := repo.Get(ctx, productID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", product.ErrProductNotFound, productID)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// mutateOrder runs one engine operation on an order inside its own unit of
// work. The order is locked by Get, so concurrent operations on the same order
// are applied one after another; a failed operation stores nothing.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID string,
	mutate func(*order.Order) (*order.Order, error),
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := getOrder(ctx, orderRepo, orderID)
	if err != nil {
		return nil, err
	}

	next, err := mutate(current)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return next, nil
}

func requireID(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
