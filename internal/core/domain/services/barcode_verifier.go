package services

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
)

// BarcodeVerifier backs the packing station scanner. The scanned barcode has
// already been resolved to a catalog product; the verifier checks that the
// product belongs to the order and verifies its line.
//
// Example usage:
//
//	verifier := services.NewBarcodeVerifier()
//	next, err := verifier.Verify(o, scanned)
//	if errors.Is(err, order.ErrItemNotFound) {
//	    // Wrong product in the tote
//	}
type BarcodeVerifier struct{}

func NewBarcodeVerifier() BarcodeVerifier {
	return BarcodeVerifier{}
}

// Verify returns the order snapshot with the scanned product's line verified.
//
// Errors:
//   - order.ErrItemNotFound when the product is not part of the order
//   - order.ErrItemNotPicked, order.ErrInvalidTransition from order.VerifyItem
func (BarcodeVerifier) Verify(o *order.Order, scanned *product.Product) (*order.Order, error) {
	if err := errors.Join(o.Validate(), scanned.Validate()); err != nil {
		return nil, err
	}

	if _, ok := o.Item(scanned.ID()); !ok {
		return nil, fmt.Errorf("%w: barcode %s (%s) is not part of order %s",
			order.ErrItemNotFound, scanned.Barcode(), scanned.ID(), o.ID())
	}

	return o.VerifyItem(scanned.ID())
}
