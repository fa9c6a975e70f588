package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// ItemStatus is the pick/verify state of a single order line.
//
// State transitions (strictly one step forward, never backwards):
//
//	Pending ──> Picked ──> Verified
type ItemStatus int

const (
	// ItemUnknown catches uninitialised values.
	ItemUnknown ItemStatus = iota

	// ItemPending is the initial status: nothing has been taken from the shelf yet.
	ItemPending

	// ItemPicked means the line has been retrieved from its bin location.
	ItemPicked

	// ItemVerified means the picked line was checked against the order at the packing station.
	ItemVerified
)

var itemStatusNames = map[ItemStatus]string{
	ItemPending:  "pending",
	ItemPicked:   "picked",
	ItemVerified: "verified",
}

// ParseItemStatus converts the wire form ("pending", "picked", "verified").
func ParseItemStatus(s string) (ItemStatus, error) {
	for status, name := range itemStatusNames {
		if name == s {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status is invalid",
		fmt.Errorf("%q is not a valid item status", s),
	)
}

// Validate rejects ItemUnknown and out-of-range values.
func (s ItemStatus) Validate() error {
	if _, ok := itemStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"item status is invalid",
			fmt.Errorf("%d is not a valid item status", s),
		)
	}
	return nil
}

// String implements fmt.Stringer; invalid values print as "unknown".
func (s ItemStatus) String() string {
	if name, ok := itemStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAtLeast reports whether s is at or beyond other in the pick/verify ordering.
func (s ItemStatus) IsAtLeast(other ItemStatus) bool {
	return s.Validate() == nil && s >= other
}

// CanTransitionTo checks that next is exactly one step after s.
// Backward moves, self transitions and skips (pending -> verified) fail with ErrInvalidTransition.
func (s ItemStatus) CanTransitionTo(next ItemStatus) error {
	if err := validateAll(s, next); err != nil {
		return err
	}
	if next != s+1 {
		return fmt.Errorf("%w: item %s -> %s", ErrInvalidTransition, s, next)
	}
	return nil
}

func validateAll(statuses ...ItemStatus) error {
	for _, st := range statuses {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}
	}
	return nil
}
