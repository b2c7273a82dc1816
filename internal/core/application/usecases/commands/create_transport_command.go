package commands

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrCreateTransportCommandIsNotConstructed is returned when the command was
// not created through the constructor.
var ErrCreateTransportCommandIsNotConstructed = errors.New(
	"CreateTransportCommand must be created via NewCreateTransportCommand constructor",
)

// CreateTransportCommand represents the winning carrier opening a transport
// record for a completed auction.
type CreateTransportCommand struct { //nolint:recvcheck //using for validation
	actor                 kernel.UUID
	auctionID             kernel.EntityID
	estimatedDeliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateTransportCommand creates a command to open a transport record.
func NewCreateTransportCommand(
	actor kernel.UUID, auctionID kernel.EntityID, estimatedDeliveryTime time.Time,
) (CreateTransportCommand, error) {
	cmd := CreateTransportCommand{
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAuctionID(auctionID),
	); err != nil {
		return CreateTransportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportCommandIsNotConstructed)
}

// Actor returns the winning carrier.
func (c CreateTransportCommand) Actor() kernel.UUID {
	return c.actor
}

// AuctionID returns the completed auction being fulfilled.
func (c CreateTransportCommand) AuctionID() kernel.EntityID {
	return c.auctionID
}

// EstimatedDeliveryTime returns the carrier's delivery estimate.
func (c CreateTransportCommand) EstimatedDeliveryTime() time.Time {
	return c.estimatedDeliveryTime
}

func (c *CreateTransportCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateTransportCommand) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	c.auctionID = auctionID
	return nil
}
