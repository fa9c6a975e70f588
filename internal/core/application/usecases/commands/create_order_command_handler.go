package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

// CreateOrderCommandHandler registers a new order. Products are read from the
// catalog in the same unit of work, so the price snapshot is consistent with
// the stored catalog.
//
// Errors: product.ErrProductNotFound for unknown products, order.ErrDuplicateItem,
// and validation errors from order.NewOrder. A taken order id fails with the
// repository's duplicate error.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	intake     services.OrderIntake
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		intake:     services.NewOrderIntake(),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	products := make([]*product.Product, 0, len(cmd.ProductIDs()))
	for _, id := range cmd.ProductIDs() {
		p, err := getProduct(ctx, productRepo, id)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	created, err := h.intake.Register(cmd.OrderID(), cmd.Customer(), cmd.OrderDate(), cmd.Priority(),
		cmd.Lines(), products)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
