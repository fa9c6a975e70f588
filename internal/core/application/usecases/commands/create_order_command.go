package commands

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents an order arriving at intake. Line prices are
// not part of the command: they are taken from the catalog when the order is created.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD10001", "John Smith", "john@example.com",
//	    "123 Main St", "express", time.Now(),
//	    []services.Line{{ProductID: "P1001", Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	customer  order.Customer
	priority  order.Priority
	orderDate time.Time
	lines     []services.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the intake data. An empty priority means
// standard and a zero orderDate means now.
func NewCreateOrderCommand(
	orderID, customerName, customerEmail, customerAddress, priority string,
	orderDate time.Time,
	lines []services.Line,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderDate: orderDate,
		guard:     guard.NewConstructorGuard(),
	}
	if cmd.orderDate.IsZero() {
		cmd.orderDate = time.Now().UTC()
	}

	customer, customerErr := order.NewCustomer(customerName, customerEmail, customerAddress)
	parsedPriority, priorityErr := order.ParsePriority(priority)

	if err := errors.Join(
		requireID("orderId", orderID),
		customerErr,
		priorityErr,
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customer = customer
	cmd.priority = parsedPriority
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string          { return c.orderID }
func (c CreateOrderCommand) Customer() order.Customer { return c.customer }
func (c CreateOrderCommand) Priority() order.Priority { return c.priority }
func (c CreateOrderCommand) OrderDate() time.Time     { return c.orderDate }

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []services.Line {
	return slices.Clone(c.lines)
}

// ProductIDs returns the distinct product ids referenced by the lines, sorted
// so that products are always locked in the same order.
func (c CreateOrderCommand) ProductIDs() []string {
	ids := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		ids = append(ids, line.ProductID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func (c *CreateOrderCommand) setLines(lines []services.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, line := range lines {
		if line.ProductID == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].productId", i))
		}
	}
	c.lines = slices.Clone(lines)
	return nil
}
