package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Priority is the shipping service level chosen at checkout. Immutable once the order exists.
type Priority int

const (
	PriorityUnknown Priority = iota
	Standard
	Express
)

var priorityNames = map[Priority]string{
	Standard: "standard",
	Express:  "express",
}

// ParsePriority converts the wire form; an empty string means Standard.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return Standard, nil
	}
	for p, name := range priorityNames {
		if name == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

func (p Priority) Validate() error {
	if _, ok := priorityNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}
