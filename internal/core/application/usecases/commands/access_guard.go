package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// requireRole loads the acting principal and checks that it holds the role.
// Every mutating handler runs one of these guards before touching state.
func requireRole(
	ctx context.Context,
	repo ports.PrincipalRepository,
	actor kernel.UUID,
	role principal.Role,
) (*principal.Principal, error) {
	p, err := repo.Get(ctx, actor)
	if err != nil {
		return nil, err
	}

	if !p.HasRole(role) {
		return nil, errs.NewUnauthorizedError(fmt.Sprintf("caller must hold %s role", role))
	}
	return p, nil
}

// isAdmin reports whether the principal holds the Admin role.
func isAdmin(p *principal.Principal) bool {
	return p.HasRole(principal.Admin)
}
