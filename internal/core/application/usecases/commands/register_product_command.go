package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// Command construction errors for product registration.
var (
	ErrRegisterProductCommandIsNotConstructed = errors.New(
		"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
	)
	ErrProductNameIsRequired     = errors.New("product name is required")
	ErrProductDetailsAreRequired = errors.New("product details are required")
	ErrProductQuantityIsRequired = errors.New("product quantity is required")
)

// RegisterProductCommand represents a producer's request to register a good
// in the marketplace.
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	name      string
	details   string
	quantity  string
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand creates a command to register a product.
// Name, details and quantity must be non-empty; the unit price may be zero.
func NewRegisterProductCommand(
	actor kernel.UUID, name, details, quantity string, unitPrice kernel.Money,
) (RegisterProductCommand, error) {
	cmd := RegisterProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setDetails(details),
		cmd.setQuantity(quantity),
	); err != nil {
		return RegisterProductCommand{}, err
	}

	cmd.unitPrice = unitPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c RegisterProductCommand) Actor() kernel.UUID {
	return c.actor
}

// Name returns the product name.
func (c RegisterProductCommand) Name() string {
	return c.name
}

// Details returns the free-text product details.
func (c RegisterProductCommand) Details() string {
	return c.details
}

// Quantity returns the free-text quantity descriptor.
func (c RegisterProductCommand) Quantity() string {
	return c.quantity
}

// UnitPrice returns the listed unit price.
func (c RegisterProductCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *RegisterProductCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RegisterProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterProductCommand) setDetails(details string) error {
	if details == "" {
		return ErrProductDetailsAreRequired
	}
	c.details = details
	return nil
}

func (c *RegisterProductCommand) setQuantity(quantity string) error {
	if quantity == "" {
		return ErrProductQuantityIsRequired
	}
	c.quantity = quantity
	return nil
}
