package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/pkg/guard"
)

// ErrGrantRoleCommandIsNotConstructed is returned when a GrantRoleCommand
// bypassed its constructor.
var ErrGrantRoleCommandIsNotConstructed = errors.New(
	"GrantRoleCommand must be created via NewGrantRoleCommand constructor",
)

// GrantRoleCommand represents an admin's request to grant a role to a
// principal. Granting an already-held role is a no-op.
type GrantRoleCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.UUID
	grantee kernel.UUID
	role    principal.Role

	guard guard.ConstructorGuard
}

// NewGrantRoleCommand creates a command to grant a role.
func NewGrantRoleCommand(actor, grantee kernel.UUID, role principal.Role) (GrantRoleCommand, error) {
	cmd := GrantRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setGrantee(grantee),
		cmd.setRole(role),
	); err != nil {
		return GrantRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantRoleCommand) Validate() error {
	return c.guard.Validate(ErrGrantRoleCommandIsNotConstructed)
}

// Actor returns the calling principal.
func (c GrantRoleCommand) Actor() kernel.UUID {
	return c.actor
}

// Grantee returns the principal receiving the role.
func (c GrantRoleCommand) Grantee() kernel.UUID {
	return c.grantee
}

// Role returns the role being granted.
func (c GrantRoleCommand) Role() principal.Role {
	return c.role
}

func (c *GrantRoleCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *GrantRoleCommand) setGrantee(grantee kernel.UUID) error {
	if err := grantee.Validate(); err != nil {
		return err
	}
	c.grantee = grantee
	return nil
}

func (c *GrantRoleCommand) setRole(role principal.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
