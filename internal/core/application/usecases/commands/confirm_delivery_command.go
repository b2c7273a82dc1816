package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrConfirmDeliveryCommandIsNotConstructed is returned when the command was
// not created through the constructor.
var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the producer acknowledging receipt of a
// delivered transport.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.UUID
	transportID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivery.
func NewConfirmDeliveryCommand(actor kernel.UUID, transportID kernel.EntityID) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTransportID(transportID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// Actor returns the transport's producer.
func (c ConfirmDeliveryCommand) Actor() kernel.UUID {
	return c.actor
}

// TransportID returns the target transport record.
func (c ConfirmDeliveryCommand) TransportID() kernel.EntityID {
	return c.transportID
}

func (c *ConfirmDeliveryCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ConfirmDeliveryCommand) setTransportID(transportID kernel.EntityID) error {
	if err := transportID.Validate(); err != nil {
		return err
	}
	c.transportID = transportID
	return nil
}
