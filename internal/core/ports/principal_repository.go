// Package ports defines the boundary interfaces of the core: repositories,
// the unit of work, the clock and the event publisher. Adapters implement
// them; command and query handlers consume them.
package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
)

// PrincipalRepository defines the persistence contract for principals and
// their roles. Every mutating operation consults it as a precondition.
type PrincipalRepository interface {
	// Save upserts a principal with its current role set. Role grants may
	// target identities the store has never seen, so there is no separate
	// Add/Update split.
	Save(ctx context.Context, aggregate *principal.Principal) error

	// Get retrieves a principal by identity. A principal unknown to the
	// store is returned as one holding no roles, so role checks read
	// uniformly.
	Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error)
}
