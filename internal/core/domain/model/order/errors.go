package order

import "errors"

// Fulfillment error taxonomy. Operations wrap these with context; match them with errors.Is.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrItemNotPicked     = errors.New("item not picked")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrIncompleteItems   = errors.New("incomplete items")
	ErrDuplicateItem     = errors.New("duplicate item")
	ErrOrderExists       = errors.New("order already exists")

	// ErrInvariantViolated marks an internally inconsistent snapshot. It is never
	// the caller's fault and such a snapshot must not be stored.
	ErrInvariantViolated = errors.New("order invariant violated")

	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)
