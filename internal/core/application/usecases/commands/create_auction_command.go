package commands

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// Command construction errors for auction creation.
var (
	ErrCreateAuctionCommandIsNotConstructed = errors.New(
		"CreateAuctionCommand must be created via NewCreateAuctionCommand constructor",
	)
	ErrAuctionTitleIsRequired       = errors.New("auction title is required")
	ErrAuctionDescriptionIsRequired = errors.New("auction description is required")
	ErrAuctionOriginIsRequired      = errors.New("auction origin is required")
	ErrAuctionDestinationIsRequired = errors.New("auction destination is required")
	ErrAuctionDurationIsInvalid     = errors.New("auction duration must be greater than 0")
	ErrAuctionWeightIsInvalid       = errors.New("auction weight must be greater than 0")
)

// CreateAuctionCommand represents a producer's request to open a reverse
// auction for transporting one of its products.
type CreateAuctionCommand struct { //nolint:recvcheck //using for validation
	actor               kernel.UUID
	productID           kernel.EntityID
	title               string
	description         string
	duration            time.Duration
	origin              string
	destination         string
	startingPrice       kernel.Money
	specialRequirements string
	weight              int64

	guard guard.ConstructorGuard
}

// NewCreateAuctionCommand creates a command to open an auction.
func NewCreateAuctionCommand(
	actor kernel.UUID,
	productID kernel.EntityID,
	title, description string,
	duration time.Duration,
	origin, destination string,
	startingPrice kernel.Money,
	specialRequirements string,
	weight int64,
) (CreateAuctionCommand, error) {
	cmd := CreateAuctionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setTitle(title),
		cmd.setDescription(description),
		cmd.setDuration(duration),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setWeight(weight),
	); err != nil {
		return CreateAuctionCommand{}, err
	}

	cmd.startingPrice = startingPrice
	cmd.specialRequirements = specialRequirements
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAuctionCommand) Validate() error {
	return c.guard.Validate(ErrCreateAuctionCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c CreateAuctionCommand) Actor() kernel.UUID {
	return c.actor
}

// ProductID returns the product to auction.
func (c CreateAuctionCommand) ProductID() kernel.EntityID {
	return c.productID
}

// Title returns the auction title.
func (c CreateAuctionCommand) Title() string {
	return c.title
}

// Description returns the auction description.
func (c CreateAuctionCommand) Description() string {
	return c.description
}

// Duration returns the bidding window length.
func (c CreateAuctionCommand) Duration() time.Duration {
	return c.duration
}

// Origin returns the pickup descriptor.
func (c CreateAuctionCommand) Origin() string {
	return c.origin
}

// Destination returns the delivery descriptor.
func (c CreateAuctionCommand) Destination() string {
	return c.destination
}

// StartingPrice returns the producer's ceiling price.
func (c CreateAuctionCommand) StartingPrice() kernel.Money {
	return c.startingPrice
}

// SpecialRequirements returns the free-text handling requirements.
func (c CreateAuctionCommand) SpecialRequirements() string {
	return c.specialRequirements
}

// Weight returns the cargo weight.
func (c CreateAuctionCommand) Weight() int64 {
	return c.weight
}

func (c *CreateAuctionCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateAuctionCommand) setProductID(productID kernel.EntityID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateAuctionCommand) setTitle(title string) error {
	if title == "" {
		return ErrAuctionTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *CreateAuctionCommand) setDescription(description string) error {
	if description == "" {
		return ErrAuctionDescriptionIsRequired
	}
	c.description = description
	return nil
}

func (c *CreateAuctionCommand) setDuration(duration time.Duration) error {
	if duration <= 0 {
		return ErrAuctionDurationIsInvalid
	}
	c.duration = duration
	return nil
}

func (c *CreateAuctionCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrAuctionOriginIsRequired
	}
	c.origin = origin
	return nil
}

func (c *CreateAuctionCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrAuctionDestinationIsRequired
	}
	c.destination = destination
	return nil
}

func (c *CreateAuctionCommand) setWeight(weight int64) error {
	if weight <= 0 {
		return ErrAuctionWeightIsInvalid
	}
	c.weight = weight
	return nil
}
