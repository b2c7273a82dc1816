package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// Command construction errors for checkpoint recording.
var (
	ErrAddCheckpointCommandIsNotConstructed = errors.New(
		"AddCheckpointCommand must be created via NewAddCheckpointCommand constructor",
	)
	ErrCheckpointLocationIsRequired = errors.New("checkpoint location is required")
)

// AddCheckpointCommand represents the carrier recording a location update on
// a transport in progress.
type AddCheckpointCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.UUID
	transportID kernel.EntityID
	location    string
	notes       string

	guard guard.ConstructorGuard
}

// NewAddCheckpointCommand creates a command to record a checkpoint.
func NewAddCheckpointCommand(
	actor kernel.UUID, transportID kernel.EntityID, location, notes string,
) (AddCheckpointCommand, error) {
	cmd := AddCheckpointCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTransportID(transportID),
		cmd.setLocation(location),
	); err != nil {
		return AddCheckpointCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrAddCheckpointCommandIsNotConstructed)
}

// Actor returns the recording carrier.
func (c AddCheckpointCommand) Actor() kernel.UUID {
	return c.actor
}

// TransportID returns the target transport record.
func (c AddCheckpointCommand) TransportID() kernel.EntityID {
	return c.transportID
}

// Location returns the checkpoint location.
func (c AddCheckpointCommand) Location() string {
	return c.location
}

// Notes returns the free-text notes.
func (c AddCheckpointCommand) Notes() string {
	return c.notes
}

func (c *AddCheckpointCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddCheckpointCommand) setTransportID(transportID kernel.EntityID) error {
	if err := transportID.Validate(); err != nil {
		return err
	}
	c.transportID = transportID
	return nil
}

func (c *AddCheckpointCommand) setLocation(location string) error {
	if location == "" {
		return ErrCheckpointLocationIsRequired
	}
	c.location = location
	return nil
}
