package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrCompleteAuctionCommandIsNotConstructed is returned when the command was
// not created through the constructor.
var ErrCompleteAuctionCommandIsNotConstructed = errors.New(
	"CompleteAuctionCommand must be created via NewCompleteAuctionCommand constructor",
)

// CompleteAuctionCommand represents a request to resolve an auction and
// declare its winner.
type CompleteAuctionCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.UUID
	auctionID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewCompleteAuctionCommand creates a command to resolve an auction.
func NewCompleteAuctionCommand(actor kernel.UUID, auctionID kernel.EntityID) (CompleteAuctionCommand, error) {
	cmd := CompleteAuctionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAuctionID(auctionID),
	); err != nil {
		return CompleteAuctionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAuctionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAuctionCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c CompleteAuctionCommand) Actor() kernel.UUID {
	return c.actor
}

// AuctionID returns the auction to resolve.
func (c CompleteAuctionCommand) AuctionID() kernel.EntityID {
	return c.auctionID
}

func (c *CompleteAuctionCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CompleteAuctionCommand) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	c.auctionID = auctionID
	return nil
}
