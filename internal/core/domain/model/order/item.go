package order

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned for Item values built without NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem or RestoreItem")

// Item is one product line of an order. The product is referenced by id only;
// the price is a snapshot taken at order time and never changes.
type Item struct { //nolint:recvcheck //using for validation
	productID string
	quantity  int
	price     kernel.Money
	status    ItemStatus
	guard     guard.ConstructorGuard
}

// NewItem creates a pending line.
func NewItem(productID string, quantity int, price kernel.Money) (Item, error) {
	return RestoreItem(productID, quantity, price, ItemPending)
}

// RestoreItem rebuilds a line in any valid status, e.g. when loading from storage.
func RestoreItem(productID string, quantity int, price kernel.Money, status ItemStatus) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return Item{}, err
	}

	item.price = price
	item.status = status
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() string   { return i.productID }
func (i Item) Quantity() int       { return i.quantity }
func (i Item) Price() kernel.Money { return i.price }
func (i Item) Status() ItemStatus  { return i.status }

// LineTotal is price x quantity.
func (i Item) LineTotal() kernel.Money {
	return i.price.Times(i.quantity)
}

func (i Item) withStatus(status ItemStatus) Item {
	i.status = status
	return i
}

func (i *Item) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
