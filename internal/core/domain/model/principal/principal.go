// Package principal implements the access control aggregate: the set of
// roles held by each identity. Grants and revocations are idempotent so the
// operations stay commutative, and they are themselves Admin-gated at the
// application layer.
package principal

import (
	"errors"
	"sort"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through NewPrincipal or RestorePrincipal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is an identity together with the roles it holds. A fresh
// principal holds no roles; the deployer is seeded with Admin and Producer
// by the composition root.
type Principal struct {
	id    kernel.UUID
	roles map[Role]struct{}

	guard guard.ConstructorGuard
}

// NewPrincipal creates a principal with no roles.
func NewPrincipal(id kernel.UUID) (*Principal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Principal{
		id:    id,
		roles: make(map[Role]struct{}),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestorePrincipal reconstructs a principal from persistence with its
// previously granted roles.
func RestorePrincipal(id kernel.UUID, roles []Role) (*Principal, error) {
	p, err := NewPrincipal(id)
	if err != nil {
		return nil, err
	}

	for _, role := range roles {
		if err = role.Validate(); err != nil {
			return nil, err
		}
		p.roles[role] = struct{}{}
	}

	return p, nil
}

// Validate ensures the principal was created via a constructor.
func (p *Principal) Validate() error {
	if p == nil {
		return ErrPrincipalIsNotConstructed
	}
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the principal's identity.
func (p *Principal) ID() kernel.UUID {
	return p.id
}

// HasRole reports whether the principal currently holds the role.
func (p *Principal) HasRole(role Role) bool {
	_, ok := p.roles[role]
	return ok
}

// Grant adds a role to the principal. Granting an already-held role is a
// no-op, not an error.
func (p *Principal) Grant(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	p.roles[role] = struct{}{}
	return nil
}

// Revoke removes a role from the principal. Revoking an unheld role is a
// no-op, not an error.
func (p *Principal) Revoke(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	delete(p.roles, role)
	return nil
}

// Roles returns the held roles in stable order, for persistence and display.
func (p *Principal) Roles() []Role {
	roles := make([]Role, 0, len(p.roles))
	for role := range p.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
