package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/pkg/guard"
)

// ErrChangeProductStatusCommandIsNotConstructed is returned when a
// ChangeProductStatusCommand bypassed its constructor.
var ErrChangeProductStatusCommandIsNotConstructed = errors.New(
	"ChangeProductStatusCommand must be created via NewChangeProductStatusCommand constructor",
)

// ChangeProductStatusCommand represents a request to retire, reactivate or
// recall a product. Any status is reachable from any other.
type ChangeProductStatusCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	productID kernel.EntityID
	newStatus product.Status

	guard guard.ConstructorGuard
}

// NewChangeProductStatusCommand creates a command to change a product's status.
func NewChangeProductStatusCommand(
	actor kernel.UUID, productID kernel.EntityID, newStatus product.Status,
) (ChangeProductStatusCommand, error) {
	cmd := ChangeProductStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeProductStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductStatusCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c ChangeProductStatusCommand) Actor() kernel.UUID {
	return c.actor
}

// ProductID returns the product whose status changes.
func (c ChangeProductStatusCommand) ProductID() kernel.EntityID {
	return c.productID
}

// NewStatus returns the target status.
func (c ChangeProductStatusCommand) NewStatus() product.Status {
	return c.newStatus
}

func (c *ChangeProductStatusCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangeProductStatusCommand) setProductID(productID kernel.EntityID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *ChangeProductStatusCommand) setNewStatus(newStatus product.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
