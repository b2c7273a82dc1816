package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrUpdateBidCommandIsNotConstructed is returned when the command was not
// created through the constructor.
var ErrUpdateBidCommandIsNotConstructed = errors.New(
	"UpdateBidCommand must be created via NewUpdateBidCommand constructor",
)

// UpdateBidCommand represents a carrier revising its active bid.
type UpdateBidCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	auctionID kernel.EntityID
	amount    kernel.Money
	notes     string

	guard guard.ConstructorGuard
}

// NewUpdateBidCommand creates a command to revise a bid.
func NewUpdateBidCommand(
	actor kernel.UUID, auctionID kernel.EntityID, amount kernel.Money, notes string,
) (UpdateBidCommand, error) {
	cmd := UpdateBidCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAuctionID(auctionID),
	); err != nil {
		return UpdateBidCommand{}, err
	}

	cmd.amount = amount
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBidCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBidCommandIsNotConstructed)
}

// Actor returns the revising carrier.
func (c UpdateBidCommand) Actor() kernel.UUID {
	return c.actor
}

// AuctionID returns the target auction.
func (c UpdateBidCommand) AuctionID() kernel.EntityID {
	return c.auctionID
}

// Amount returns the revised transport price.
func (c UpdateBidCommand) Amount() kernel.Money {
	return c.amount
}

// Notes returns the revised free-text notes.
func (c UpdateBidCommand) Notes() string {
	return c.notes
}

func (c *UpdateBidCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateBidCommand) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	c.auctionID = auctionID
	return nil
}
