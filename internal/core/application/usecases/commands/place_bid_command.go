package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrPlaceBidCommandIsNotConstructed is returned when the command was not
// created through the constructor.
var ErrPlaceBidCommandIsNotConstructed = errors.New(
	"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
)

// PlaceBidCommand represents a carrier's offer to transport the auctioned
// product for the given amount.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	auctionID kernel.EntityID
	amount    kernel.Money
	notes     string

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to place a bid.
func NewPlaceBidCommand(
	actor kernel.UUID, auctionID kernel.EntityID, amount kernel.Money, notes string,
) (PlaceBidCommand, error) {
	cmd := PlaceBidCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAuctionID(auctionID),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	cmd.amount = amount
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// Actor returns the bidding carrier.
func (c PlaceBidCommand) Actor() kernel.UUID {
	return c.actor
}

// AuctionID returns the target auction.
func (c PlaceBidCommand) AuctionID() kernel.EntityID {
	return c.auctionID
}

// Amount returns the offered transport price.
func (c PlaceBidCommand) Amount() kernel.Money {
	return c.amount
}

// Notes returns the free-text notes attached to the bid.
func (c PlaceBidCommand) Notes() string {
	return c.notes
}

func (c *PlaceBidCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *PlaceBidCommand) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	c.auctionID = auctionID
	return nil
}
