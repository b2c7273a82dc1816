package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrCancelBidCommandIsNotConstructed is returned when the command was not
// created through the constructor.
var ErrCancelBidCommandIsNotConstructed = errors.New(
	"CancelBidCommand must be created via NewCancelBidCommand constructor",
)

// CancelBidCommand represents a carrier withdrawing its active bid.
type CancelBidCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	auctionID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewCancelBidCommand creates a command to withdraw a bid.
func NewCancelBidCommand(actor kernel.UUID, auctionID kernel.EntityID) (CancelBidCommand, error) {
	cmd := CancelBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAuctionID(auctionID),
	); err != nil {
		return CancelBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBidCommand) Validate() error {
	return c.guard.Validate(ErrCancelBidCommandIsNotConstructed)
}

// Actor returns the withdrawing carrier.
func (c CancelBidCommand) Actor() kernel.UUID {
	return c.actor
}

// AuctionID returns the target auction.
func (c CancelBidCommand) AuctionID() kernel.EntityID {
	return c.auctionID
}

func (c *CancelBidCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CancelBidCommand) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	c.auctionID = auctionID
	return nil
}
