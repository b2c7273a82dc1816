package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrGetAuctionQueryIsNotConstructed is returned when the query was not
// created through the constructor.
var ErrGetAuctionQueryIsNotConstructed = errors.New(
	"GetAuctionQuery must be created via NewGetAuctionQuery constructor",
)

// GetAuctionQuery retrieves one auction together with its full bid ledger.
type GetAuctionQuery struct { //nolint:recvcheck //using for validation
	auctionID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewGetAuctionQuery creates a query for a single auction.
func NewGetAuctionQuery(auctionID kernel.EntityID) (GetAuctionQuery, error) {
	q := GetAuctionQuery{guard: guard.NewConstructorGuard()}
	if err := q.setAuctionID(auctionID); err != nil {
		return GetAuctionQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuctionQuery) Validate() error {
	return q.guard.Validate(ErrGetAuctionQueryIsNotConstructed)
}

// AuctionID returns the requested auction.
func (q GetAuctionQuery) AuctionID() kernel.EntityID {
	return q.auctionID
}

func (q *GetAuctionQuery) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	q.auctionID = auctionID
	return nil
}

// GetAuctionQueryResponse is the full read model for one auction. The bid
// ledger is returned in arrival order with inactive entries included, so the
// bidding history is visible end to end.
type GetAuctionQueryResponse struct {
	ID                  kernel.EntityID
	ProductID           kernel.EntityID
	Producer            kernel.UUID
	Title               string
	Description         string
	Origin              string
	Destination         string
	Weight              int64
	SpecialRequirements string
	StartTime           time.Time
	EndTime             time.Time
	StartingPrice       kernel.Money
	CurrentLowestBid    kernel.Money
	LowestBidder        kernel.UUID
	BidCount            int
	Status              auction.Status
	LastUpdated         time.Time
	Bids                []GetAuctionQueryBidResponse
}

// GetAuctionQueryBidResponse is the read model for one ledger entry.
type GetAuctionQueryBidResponse struct {
	Seq       int
	Carrier   kernel.UUID
	Amount    kernel.Money
	Notes     string
	Timestamp time.Time
	Active    bool
}
