package ports

import (
	"context"
	"time"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
)

// AuctionRepository defines the persistence contract for auction aggregates,
// bid ledgers included.
type AuctionRepository interface {
	// NextID reserves the next sequential auction identifier.
	NextID(ctx context.Context) (kernel.EntityID, error)

	// Add persists a new auction aggregate.
	Add(ctx context.Context, aggregate *auction.Auction) error

	// Update persists changes to an existing auction and its bid ledger.
	Update(ctx context.Context, aggregate *auction.Auction) error

	// Get retrieves an auction with its complete bid ledger.
	Get(ctx context.Context, id kernel.EntityID) (*auction.Auction, error)

	// GetAllExpiredActive retrieves Active auctions whose deadline has
	// passed as of now. Used by the settlement sweep.
	GetAllExpiredActive(ctx context.Context, now time.Time) ([]*auction.Auction, error)
}
