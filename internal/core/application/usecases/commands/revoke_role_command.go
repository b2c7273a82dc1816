package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/pkg/guard"
)

// ErrRevokeRoleCommandIsNotConstructed is returned when a RevokeRoleCommand
// bypassed its constructor.
var ErrRevokeRoleCommandIsNotConstructed = errors.New(
	"RevokeRoleCommand must be created via NewRevokeRoleCommand constructor",
)

// RevokeRoleCommand represents an admin's request to revoke a role from a
// principal. Revoking an unheld role is a no-op.
type RevokeRoleCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.UUID
	holder  kernel.UUID
	role    principal.Role

	guard guard.ConstructorGuard
}

// NewRevokeRoleCommand creates a command to revoke a role.
func NewRevokeRoleCommand(actor, holder kernel.UUID, role principal.Role) (RevokeRoleCommand, error) {
	cmd := RevokeRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setHolder(holder),
		cmd.setRole(role),
	); err != nil {
		return RevokeRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeRoleCommand) Validate() error {
	return c.guard.Validate(ErrRevokeRoleCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c RevokeRoleCommand) Actor() kernel.UUID {
	return c.actor
}

// Holder returns the principal losing the role.
func (c RevokeRoleCommand) Holder() kernel.UUID {
	return c.holder
}

// Role returns the role being revoked.
func (c RevokeRoleCommand) Role() principal.Role {
	return c.role
}

func (c *RevokeRoleCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RevokeRoleCommand) setHolder(holder kernel.UUID) error {
	if err := holder.Validate(); err != nil {
		return err
	}
	c.holder = holder
	return nil
}

func (c *RevokeRoleCommand) setRole(role principal.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
