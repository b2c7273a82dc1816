package queries

import (
	"context"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveAuctionsQueryHandler lists auctions open for bidding, soonest
// deadline first. Uses direct SQL for optimal read performance.
type GetActiveAuctionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveAuctionsQueryHandler creates a handler for active auction
// listings.
func NewGetActiveAuctionsQueryHandler(db *gorm.DB) GetActiveAuctionsQueryHandler {
	return GetActiveAuctionsQueryHandler{db: db}
}

// Handle executes the query and returns the requested page.
func (h GetActiveAuctionsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveAuctionsQuery,
) ([]GetActiveAuctionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	auctions := make([]GetActiveAuctionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			producer_id,
			title,
			origin,
			destination,
			weight,
			end_time,
			starting_price,
			current_lowest_bid,
			bid_count,
			status
		FROM auctions
		WHERE status = ?
		ORDER BY end_time, id
		OFFSET ? LIMIT ?
	`, int(auction.ActiveStatus), query.Offset(), query.Count()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveAuctionsQueryResponse
		var id, productID, startingPrice, currentLowestBid int64
		var producerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&productID,
			&producerID,
			&resp.Title,
			&resp.Origin,
			&resp.Destination,
			&resp.Weight,
			&resp.EndTime,
			&startingPrice,
			&currentLowestBid,
			&resp.BidCount,
			&status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewEntityID(id); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.NewEntityID(productID); err != nil {
			return nil, err
		}
		if resp.Producer, err = kernel.UUIDFromBytes(producerID[:]); err != nil {
			return nil, err
		}
		if resp.StartingPrice, err = kernel.NewMoney(startingPrice); err != nil {
			return nil, err
		}
		if resp.CurrentLowestBid, err = kernel.NewMoney(currentLowestBid); err != nil {
			return nil, err
		}
		resp.Status = auction.Status(status)

		auctions = append(auctions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return auctions, nil
}
