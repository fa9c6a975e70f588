package product

import (
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// AdjustmentKind says how a StockAdjustment quantity applies to the current stock.
type AdjustmentKind int

const (
	AdjustmentUnknown AdjustmentKind = iota
	AdjustmentAdd
	AdjustmentRemove
	AdjustmentSet
)

var adjustmentKindNames = map[AdjustmentKind]string{
	AdjustmentAdd:    "add",
	AdjustmentRemove: "remove",
	AdjustmentSet:    "set",
}

func ParseAdjustmentKind(s string) (AdjustmentKind, error) {
	for k, name := range adjustmentKindNames {
		if name == s {
			return k, nil
		}
	}
	return AdjustmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind",
		fmt.Errorf("%q is not one of add, remove, set", s),
	)
}

func (k AdjustmentKind) Validate() error {
	if _, ok := adjustmentKindNames[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid adjustment kind", k))
	}
	return nil
}

func (k AdjustmentKind) String() string {
	if name, ok := adjustmentKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ErrStockAdjustmentIsNotConstructed is returned for StockAdjustment values built without NewStockAdjustment.
var ErrStockAdjustmentIsNotConstructed = errs.NewValueIsRequiredError(
	"stock adjustment must be created via NewStockAdjustment")

// StockAdjustment is a requested change of stock: add or remove units, or
// overwrite the count after a cycle count.
type StockAdjustment struct { //nolint:recvcheck //using for validation
	kind     AdjustmentKind
	quantity int
	guard    guard.ConstructorGuard
}

func NewStockAdjustment(kind AdjustmentKind, quantity int) (StockAdjustment, error) {
	if err := kind.Validate(); err != nil {
		return StockAdjustment{}, err
	}
	if quantity < 0 {
		return StockAdjustment{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	return StockAdjustment{kind: kind, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
}

func (a StockAdjustment) Validate() error {
	return a.guard.Validate(ErrStockAdjustmentIsNotConstructed)
}

func (a StockAdjustment) Kind() AdjustmentKind { return a.kind }
func (a StockAdjustment) Quantity() int        { return a.quantity }

// apply returns the stock level after the adjustment. Remove clamps at zero.
func (a StockAdjustment) apply(current int) int {
	switch a.kind {
	case AdjustmentAdd:
		return current + a.quantity
	case AdjustmentRemove:
		return max(current-a.quantity, 0)
	case AdjustmentSet:
		return a.quantity
	default:
		return current
	}
}
