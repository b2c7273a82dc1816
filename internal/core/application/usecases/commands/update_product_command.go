package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrUpdateProductCommandIsNotConstructed is returned when an
// UpdateProductCommand bypassed its constructor.
var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a product's listing
// fields. Empty quantity or details mean "leave unchanged"; the unit price
// is always overwritten because zero is a legal explicit price. That
// asymmetry is part of the external contract and is kept deliberately.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	productID kernel.EntityID
	quantity  string
	unitPrice kernel.Money
	details   string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product.
func NewUpdateProductCommand(
	actor kernel.UUID, productID kernel.EntityID, quantity string, unitPrice kernel.Money, details string,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	cmd.quantity = quantity
	cmd.unitPrice = unitPrice
	cmd.details = details
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c UpdateProductCommand) Actor() kernel.UUID {
	return c.actor
}

// ProductID returns the product being updated.
func (c UpdateProductCommand) ProductID() kernel.EntityID {
	return c.productID
}

// Quantity returns the new quantity descriptor; empty means unchanged.
func (c UpdateProductCommand) Quantity() string {
	return c.quantity
}

// UnitPrice returns the new unit price, always applied.
func (c UpdateProductCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Details returns the new details; empty means unchanged.
func (c UpdateProductCommand) Details() string {
	return c.details
}

func (c *UpdateProductCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateProductCommand) setProductID(productID kernel.EntityID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
