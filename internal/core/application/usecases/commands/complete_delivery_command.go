package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// Command construction errors for delivery completion.
var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
	ErrFinalLocationIsRequired = errors.New("final location is required")
)

// CompleteDeliveryCommand represents the carrier declaring the cargo
// delivered at its final location.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.UUID
	transportID   kernel.EntityID
	finalLocation string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(
	actor kernel.UUID, transportID kernel.EntityID, finalLocation string,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTransportID(transportID),
		cmd.setFinalLocation(finalLocation),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// Actor returns the transport's carrier.
func (c CompleteDeliveryCommand) Actor() kernel.UUID {
	return c.actor
}

// TransportID returns the target transport record.
func (c CompleteDeliveryCommand) TransportID() kernel.EntityID {
	return c.transportID
}

// FinalLocation returns where the cargo was handed over.
func (c CompleteDeliveryCommand) FinalLocation() string {
	return c.finalLocation
}

func (c *CompleteDeliveryCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CompleteDeliveryCommand) setTransportID(transportID kernel.EntityID) error {
	if err := transportID.Validate(); err != nil {
		return err
	}
	c.transportID = transportID
	return nil
}

func (c *CompleteDeliveryCommand) setFinalLocation(finalLocation string) error {
	if finalLocation == "" {
		return ErrFinalLocationIsRequired
	}
	c.finalLocation = finalLocation
	return nil
}
