package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	// RackMin is the lowest rack number inside an aisle.
	RackMin = 1
	// RackMax is the highest rack number inside an aisle.
	RackMax = 99
	// ShelfMin is the lowest shelf level on a rack.
	ShelfMin = 1
	// ShelfMax is the highest shelf level on a rack.
	ShelfMax = 9
)

// ErrLocationIsNotConstructed is returned when a Location was not built by NewLocation or ParseLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or ParseLocation constructors")

// Location is a warehouse bin address: aisle letter, rack number and shelf level.
// Its canonical text form is "AISLE-RACK-SHELF", e.g. "A-12-3".
//
// Location is an immutable value object; the zero value is invalid.
//
// Example:
//
//	loc, err := kernel.ParseLocation("B-05-2")
//	if err != nil {
//	    // Handle malformed bin code
//	}
//	fmt.Println(loc.Aisle(), loc.Rack(), loc.Shelf()) // B 5 2
type Location struct { //nolint:recvcheck //using for validation
	aisle rune
	rack  int
	shelf int
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from its parts.
// The aisle must be an upper-case letter A-Z, rack in [RackMin..RackMax]
// and shelf in [ShelfMin..ShelfMax].
func NewLocation(aisle rune, rack, shelf int) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setAisle(aisle), loc.setRack(rack), loc.setShelf(shelf)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation parses the "AISLE-RACK-SHELF" form. Racks may be zero padded ("A-05-1").
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || len(parts[0]) != 1 {
		return Location{}, errs.NewValueIsInvalidErrorWithCause(
			"location",
			fmt.Errorf("%q is not in AISLE-RACK-SHELF form", s),
		)
	}

	rack, err := strconv.Atoi(parts[1])
	if err != nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("rack", err)
	}

	shelf, err := strconv.Atoi(parts[2])
	if err != nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("shelf", err)
	}

	return NewLocation(rune(parts[0][0]), rack, shelf)
}

// MustParseLocation is ParseLocation for fixtures and tests; it panics on error.
func MustParseLocation(s string) Location {
	loc, err := ParseLocation(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate reports whether the Location was built through a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Aisle returns the aisle letter.
func (l Location) Aisle() rune {
	return l.aisle
}

// Rack returns the rack number within the aisle.
func (l Location) Rack() int {
	return l.rack
}

// Shelf returns the shelf level on the rack.
func (l Location) Shelf() int {
	return l.shelf
}

// IsEqual compares two locations by value.
func (l Location) IsEqual(other Location) bool {
	return l.aisle == other.aisle && l.rack == other.rack && l.shelf == other.shelf
}

// Less orders locations along a picking walk: aisle, then rack, then shelf.
func (l Location) Less(other Location) bool {
	if l.aisle != other.aisle {
		return l.aisle < other.aisle
	}
	if l.rack != other.rack {
		return l.rack < other.rack
	}
	return l.shelf < other.shelf
}

// String returns the canonical bin code with a two digit rack, e.g. "B-05-2".
func (l Location) String() string {
	if l.Validate() != nil {
		return ""
	}
	return fmt.Sprintf("%c-%02d-%d", l.aisle, l.rack, l.shelf)
}

func (l *Location) setAisle(aisle rune) error {
	if aisle < 'A' || aisle > 'Z' {
		return errs.NewValueIsInvalidErrorWithCause("aisle", fmt.Errorf("%q is not an upper-case letter", aisle))
	}
	l.aisle = aisle
	return nil
}

func (l *Location) setRack(rack int) error {
	if rack < RackMin || rack > RackMax {
		return errs.NewValueIsOutOfRangeError("rack", rack, RackMin, RackMax)
	}
	l.rack = rack
	return nil
}

func (l *Location) setShelf(shelf int) error {
	if shelf < ShelfMin || shelf > ShelfMax {
		return errs.NewValueIsOutOfRangeError("shelf", shelf, ShelfMin, ShelfMax)
	}
	l.shelf = shelf
	return nil
}
