package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// Command construction errors for dispute raising.
var (
	ErrRaiseDisputeCommandIsNotConstructed = errors.New(
		"RaiseDisputeCommand must be created via NewRaiseDisputeCommand constructor",
	)
	ErrDisputeReasonIsRequired = errors.New("dispute reason is required")
)

// RaiseDisputeCommand represents either party contesting a transport.
type RaiseDisputeCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.UUID
	transportID kernel.EntityID
	reason      string

	guard guard.ConstructorGuard
}

// NewRaiseDisputeCommand creates a command to raise a dispute.
func NewRaiseDisputeCommand(
	actor kernel.UUID, transportID kernel.EntityID, reason string,
) (RaiseDisputeCommand, error) {
	cmd := RaiseDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTransportID(transportID),
		cmd.setReason(reason),
	); err != nil {
		return RaiseDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRaiseDisputeCommandIsNotConstructed)
}

// Actor returns the disputing party.
func (c RaiseDisputeCommand) Actor() kernel.UUID {
	return c.actor
}

// TransportID returns the contested transport record.
func (c RaiseDisputeCommand) TransportID() kernel.EntityID {
	return c.transportID
}

// Reason returns the dispute reason.
func (c RaiseDisputeCommand) Reason() string {
	return c.reason
}

func (c *RaiseDisputeCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RaiseDisputeCommand) setTransportID(transportID kernel.EntityID) error {
	if err := transportID.Validate(); err != nil {
		return err
	}
	c.transportID = transportID
	return nil
}

func (c *RaiseDisputeCommand) setReason(reason string) error {
	if reason == "" {
		return ErrDisputeReasonIsRequired
	}
	c.reason = reason
	return nil
}
