// Package customer holds the Customer aggregate: the identity and contact
// profile that owns a cart and places orders.
package customer

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrEmailIsRequired          = errs.NewValueIsRequiredError("email")
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is immutable once created; profile updates are administrative
// and happen outside the fulfillment core.
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string
	guard   guard.ConstructorGuard
}

// NewCustomer validates and builds a customer profile.
func NewCustomer(id kernel.UUID, name, email, phone, address string) (*Customer, error) {
	c := &Customer{
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer from storage without re-validating it.
func RestoreCustomer(id kernel.UUID, name, email, phone, address string) *Customer {
	return &Customer{
		id:      id,
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

// Address is the default delivery address offered at checkout.
func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}
