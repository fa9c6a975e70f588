package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// VerifyItemByBarcodeCommandHandler resolves the scanned barcode through the
// catalog and verifies the matching order line.
//
// Errors:
//   - order.ErrOrderNotFound for an unknown order
//   - order.ErrItemNotFound when the barcode is unknown or its product is not in the order
//   - order.ErrItemNotPicked, order.ErrInvalidTransition from the verification itself
type VerifyItemByBarcodeCommandHandler struct {
	uowFactory UoWFactory
	verifier   services.BarcodeVerifier
}

func NewVerifyItemByBarcodeCommandHandler(uowFactory UoWFactory) VerifyItemByBarcodeCommandHandler {
	return VerifyItemByBarcodeCommandHandler{
		uowFactory: uowFactory,
		verifier:   services.NewBarcodeVerifier(),
	}
}

func (h VerifyItemByBarcodeCommandHandler) Handle(
	ctx context.Context,
	cmd VerifyItemByBarcodeCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	current, err := getOrder(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	scanned, err := uow.ProductRepository().GetByBarcode(ctx, cmd.Barcode())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: unknown barcode %s for order %s", order.ErrItemNotFound, cmd.Barcode(), cmd.OrderID())
	}
	if err != nil {
		return nil, err
	}

	next, err := h.verifier.Verify(current, scanned)
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
