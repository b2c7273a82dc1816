package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/pkg/guard"
)

// ErrUpdateTransportStatusCommandIsNotConstructed is returned when the
// command was not created through the constructor.
var ErrUpdateTransportStatusCommandIsNotConstructed = errors.New(
	"UpdateTransportStatusCommand must be created via NewUpdateTransportStatusCommand constructor",
)

// UpdateTransportStatusCommand represents a party moving a transport to a
// new lifecycle status.
type UpdateTransportStatusCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.UUID
	transportID kernel.EntityID
	newStatus   transport.Status
	notes       string

	guard guard.ConstructorGuard
}

// NewUpdateTransportStatusCommand creates a command to change transport
// status.
func NewUpdateTransportStatusCommand(
	actor kernel.UUID, transportID kernel.EntityID, newStatus transport.Status, notes string,
) (UpdateTransportStatusCommand, error) {
	cmd := UpdateTransportStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTransportID(transportID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateTransportStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTransportStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTransportStatusCommandIsNotConstructed)
}

// Actor returns the caller's principal id.
func (c UpdateTransportStatusCommand) Actor() kernel.UUID {
	return c.actor
}

// TransportID returns the target transport record.
func (c UpdateTransportStatusCommand) TransportID() kernel.EntityID {
	return c.transportID
}

// NewStatus returns the requested status.
func (c UpdateTransportStatusCommand) NewStatus() transport.Status {
	return c.newStatus
}

// Notes returns the free-text notes recorded with the change.
func (c UpdateTransportStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateTransportStatusCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateTransportStatusCommand) setTransportID(transportID kernel.EntityID) error {
	if err := transportID.Validate(); err != nil {
		return err
	}
	c.transportID = transportID
	return nil
}

func (c *UpdateTransportStatusCommand) setNewStatus(newStatus transport.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
