package order

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned for Customer values built without NewCustomer.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("customer must be created via NewCustomer")

// Customer is the buyer snapshot stored on the order. It never changes after intake.
type Customer struct { //nolint:recvcheck //using for validation
	name    string
	email   string
	address string
	guard   guard.ConstructorGuard
}

// NewCustomer validates and builds a Customer. All fields are required.
func NewCustomer(name, email, address string) (Customer, error) {
	c := Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setName(name), c.setEmail(email), c.setAddress(address)); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Email() string   { return c.email }
func (c Customer) Address() string { return c.address }

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("customer email", fmt.Errorf("%q is not an address", email))
	}
	c.email = email
	return nil
}

func (c *Customer) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}
