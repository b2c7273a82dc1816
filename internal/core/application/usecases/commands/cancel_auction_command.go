package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrCancelAuctionCommandIsNotConstructed is returned when the command was
// not created through the constructor.
var ErrCancelAuctionCommandIsNotConstructed = errors.New(
	"CancelAuctionCommand must be created via NewCancelAuctionCommand constructor",
)

// CancelAuctionCommand represents a request to withdraw an auction without a
// winner.
type CancelAuctionCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	auctionID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewCancelAuctionCommand creates a command to withdraw an auction.
func NewCancelAuctionCommand(actor kernel.UUID, auctionID kernel.EntityID) (CancelAuctionCommand, error) {
	cmd := CancelAuctionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAuctionID(auctionID),
	); err != nil {
		return CancelAuctionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAuctionCommand) Validate() error {
	return c.guard.Validate(ErrCancelAuctionCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c CancelAuctionCommand) Actor() kernel.UUID {
	return c.actor
}

// AuctionID returns the auction to withdraw.
func (c CancelAuctionCommand) AuctionID() kernel.EntityID {
	return c.auctionID
}

func (c *CancelAuctionCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CancelAuctionCommand) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	c.auctionID = auctionID
	return nil
}
