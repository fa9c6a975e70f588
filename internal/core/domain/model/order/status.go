package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status is the order-level fulfillment status.
//
// Apart from Shipped it is never set directly: it is derived from the item
// statuses by DeriveStatus after every item change.
//
//	Pending ──> Processing ──> Picked ──> Packed ──> Shipped
//	   │             ▲  │                   ▲
//	   └─────────────┘  └───────────────────┘
//	       (item-driven, see DeriveStatus)   (explicit)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending: no item has been picked yet.
	Pending

	// Processing: some, but not all, items are picked or verified.
	Processing

	// Picked: every item is picked and none verified.
	Picked

	// Packed: every item is verified.
	Packed

	// Shipped: handed over to the carrier. Terminal.
	Shipped
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Processing: "processing",
	Picked:     "picked",
	Packed:     "packed",
	Shipped:    "shipped",
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Processing, Picked, Packed, Shipped}
}

// ParseStatus converts the wire form ("pending", "processing", ...).
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values print as "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Shipped
}

// Ship transitions Packed -> Shipped. Any other source status fails with ErrInvalidTransition.
func (s Status) Ship() (Status, error) {
	if s != Packed {
		return Unknown, fmt.Errorf("%w: %s order cannot be shipped", ErrInvalidTransition, s)
	}
	return Shipped, nil
}
