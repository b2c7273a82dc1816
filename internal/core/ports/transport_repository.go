package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/transport"
)

// TransportRepository defines the persistence contract for transport
// records, checkpoint ledgers included.
type TransportRepository interface {
	// NextID reserves the next sequential transport identifier.
	NextID(ctx context.Context) (kernel.EntityID, error)

	// Add persists a new transport record.
	Add(ctx context.Context, aggregate *transport.TransportRecord) error

	// Update persists changes to an existing record and its checkpoint ledger.
	Update(ctx context.Context, aggregate *transport.TransportRecord) error

	// Get retrieves a transport record with its complete checkpoint ledger.
	Get(ctx context.Context, id kernel.EntityID) (*transport.TransportRecord, error)

	// GetByAuction retrieves the transport records opened for an auction,
	// oldest first. The reference behavior permits more than one.
	GetByAuction(ctx context.Context, auctionID kernel.EntityID) ([]*transport.TransportRecord, error)
}
