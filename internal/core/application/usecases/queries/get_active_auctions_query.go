// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass the
// aggregates, reading the tables directly.
package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrGetActiveAuctionsQueryIsNotConstructed is returned when the query was
// not created through the constructor.
var ErrGetActiveAuctionsQueryIsNotConstructed = errors.New(
	"GetActiveAuctionsQuery must be created via NewGetActiveAuctionsQuery constructor",
)

// GetActiveAuctionsQuery retrieves a page of auctions that are open for
// bidding. Carriers use it to discover work.
type GetActiveAuctionsQuery struct { //nolint:recvcheck //using for validation
	offset int
	count  int

	guard guard.ConstructorGuard
}

// NewGetActiveAuctionsQuery creates a paged query over active auctions.
func NewGetActiveAuctionsQuery(offset, count int) (GetActiveAuctionsQuery, error) {
	q := GetActiveAuctionsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setPage(offset, count); err != nil {
		return GetActiveAuctionsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveAuctionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveAuctionsQueryIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (q GetActiveAuctionsQuery) Offset() int {
	return q.offset
}

// Count returns the page size.
func (q GetActiveAuctionsQuery) Count() int {
	return q.count
}

func (q *GetActiveAuctionsQuery) setPage(offset, count int) error {
	if err := validatePage(offset, count); err != nil {
		return err
	}
	q.offset = offset
	q.count = count
	return nil
}

// GetActiveAuctionsQueryResponse is the read model for one open auction in a
// listing. Bids are not expanded; GetAuctionQuery returns the full ledger.
type GetActiveAuctionsQueryResponse struct {
	ID               kernel.EntityID
	ProductID        kernel.EntityID
	Producer         kernel.UUID
	Title            string
	Origin           string
	Destination      string
	Weight           int64
	EndTime          time.Time
	StartingPrice    kernel.Money
	CurrentLowestBid kernel.Money
	BidCount         int
	Status           auction.Status
}
