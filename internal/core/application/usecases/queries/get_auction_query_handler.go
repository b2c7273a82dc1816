package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuctionQueryHandler retrieves one auction with its complete bid ledger.
type GetAuctionQueryHandler struct {
	db *gorm.DB
}

// NewGetAuctionQueryHandler creates a handler for single-auction reads.
func NewGetAuctionQueryHandler(db *gorm.DB) GetAuctionQueryHandler {
	return GetAuctionQueryHandler{db: db}
}

// Handle executes the query. The auction row and its bid rows are read in
// two statements; bids come back ordered by their ledger sequence.
func (h GetAuctionQueryHandler) Handle(
	ctx context.Context,
	query GetAuctionQuery,
) (GetAuctionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAuctionQueryResponse{}, err
	}

	resp, err := h.readAuction(ctx, query.AuctionID())
	if err != nil {
		return GetAuctionQueryResponse{}, err
	}

	resp.Bids, err = h.readBids(ctx, query.AuctionID())
	if err != nil {
		return GetAuctionQueryResponse{}, err
	}

	return resp, nil
}

func (h GetAuctionQueryHandler) readAuction(
	ctx context.Context, auctionID kernel.EntityID,
) (GetAuctionQueryResponse, error) {
	var resp GetAuctionQueryResponse
	var id, productID, startingPrice, currentLowestBid int64
	var producerID, lowestBidder uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			producer_id,
			title,
			description,
			origin,
			destination,
			weight,
			special_requirements,
			start_time,
			end_time,
			starting_price,
			current_lowest_bid,
			lowest_bidder,
			bid_count,
			status,
			last_updated
		FROM auctions
		WHERE id = ?
	`, auctionID.Value()).Row()

	err := row.Scan(
		&id,
		&productID,
		&producerID,
		&resp.Title,
		&resp.Description,
		&resp.Origin,
		&resp.Destination,
		&resp.Weight,
		&resp.SpecialRequirements,
		&resp.StartTime,
		&resp.EndTime,
		&startingPrice,
		&currentLowestBid,
		&lowestBidder,
		&resp.BidCount,
		&status,
		&resp.LastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAuctionQueryResponse{}, errs.NewObjectNotFoundError("auctionID", auctionID)
	}
	if err != nil {
		return GetAuctionQueryResponse{}, err
	}

	if resp.ID, err = kernel.NewEntityID(id); err != nil {
		return GetAuctionQueryResponse{}, err
	}
	if resp.ProductID, err = kernel.NewEntityID(productID); err != nil {
		return GetAuctionQueryResponse{}, err
	}
	if resp.Producer, err = kernel.UUIDFromBytes(producerID[:]); err != nil {
		return GetAuctionQueryResponse{}, err
	}
	// The zero UUID marks "no bidder yet" and does not survive
	// UUIDFromBytes validation, so it maps straight to the zero value.
	if lowestBidder != (uuid.UUID{}) {
		if resp.LowestBidder, err = kernel.UUIDFromBytes(lowestBidder[:]); err != nil {
			return GetAuctionQueryResponse{}, err
		}
	}
	if resp.StartingPrice, err = kernel.NewMoney(startingPrice); err != nil {
		return GetAuctionQueryResponse{}, err
	}
	if resp.CurrentLowestBid, err = kernel.NewMoney(currentLowestBid); err != nil {
		return GetAuctionQueryResponse{}, err
	}
	resp.Status = auction.Status(status)

	return resp, nil
}

func (h GetAuctionQueryHandler) readBids(
	ctx context.Context, auctionID kernel.EntityID,
) ([]GetAuctionQueryBidResponse, error) {
	bids := make([]GetAuctionQueryBidResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			carrier_id,
			amount,
			notes,
			timestamp,
			active
		FROM bids
		WHERE auction_id = ?
		ORDER BY seq
	`, auctionID.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bid GetAuctionQueryBidResponse
		var carrierID uuid.UUID
		var amount int64

		err = rows.Scan(
			&bid.Seq,
			&carrierID,
			&amount,
			&bid.Notes,
			&bid.Timestamp,
			&bid.Active,
		)
		if err != nil {
			return nil, err
		}

		if bid.Carrier, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
			return nil, err
		}
		if bid.Amount, err = kernel.NewMoney(amount); err != nil {
			return nil, err
		}

		bids = append(bids, bid)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
