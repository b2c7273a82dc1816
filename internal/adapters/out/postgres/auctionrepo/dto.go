// Package auctionrepo provides data transfer objects and mapping functions
// for auction persistence. The auction row and its bid ledger rows are
// written together; ledger rows are append-only and keyed by the auction id
// and the bid's ledger sequence.
package auctionrepo

import (
	"time"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuctionDTO represents the database structure for persisting auction
// aggregates. The zero LowestBidder UUID means no active bid.
type AuctionDTO struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement:false"`
	ProductID           int64     `gorm:"not null;index"`
	ProducerID          uuid.UUID `gorm:"type:uuid;index;not null"`
	Title               string    `gorm:"type:varchar(255);not null"`
	Description         string    `gorm:"type:text;not null"`
	Origin              string    `gorm:"type:varchar(255);not null"`
	Destination         string    `gorm:"type:varchar(255);not null"`
	Weight              int64     `gorm:"not null"`
	SpecialRequirements string    `gorm:"type:text"`
	StartTime           time.Time
	EndTime             time.Time `gorm:"index"`
	StartingPrice       int64     `gorm:"not null"`
	CurrentLowestBid    int64     `gorm:"not null"`
	LowestBidder        uuid.UUID `gorm:"type:uuid"`
	BidCount            int       `gorm:"not null"`
	Status              int       `gorm:"not null;index"`
	LastUpdated         time.Time
	Bids                []BidDTO `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "auctions".
func (AuctionDTO) TableName() string {
	return "auctions"
}

// BidDTO represents one bid ledger entry. Rows are never deleted or
// reordered; supersession and cancellation only flip Active.
type BidDTO struct {
	AuctionID int64     `gorm:"primaryKey;autoIncrement:false"`
	Seq       int       `gorm:"primaryKey;autoIncrement:false"`
	CarrierID uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount    int64     `gorm:"not null"`
	Notes     string    `gorm:"type:text"`
	Timestamp time.Time
	Active    bool `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "bids".
func (BidDTO) TableName() string {
	return "bids"
}

// fromDomain converts an auction aggregate, bid ledger included, to its
// database representation.
func fromDomain(a *auction.Auction) AuctionDTO {
	bids := make([]BidDTO, 0, len(a.Bids()))
	for _, b := range a.Bids() {
		bids = append(bids, BidDTO{
			AuctionID: a.ID().Value(),
			Seq:       b.Seq(),
			CarrierID: b.Carrier().Bytes(),
			Amount:    b.Amount().Amount(),
			Notes:     b.Notes(),
			Timestamp: b.Timestamp(),
			Active:    b.IsActive(),
		})
	}

	return AuctionDTO{
		ID:                  a.ID().Value(),
		ProductID:           a.ProductID().Value(),
		ProducerID:          a.Producer().Bytes(),
		Title:               a.Title(),
		Description:         a.Description(),
		Origin:              a.Origin(),
		Destination:         a.Destination(),
		Weight:              a.Weight(),
		SpecialRequirements: a.SpecialRequirements(),
		StartTime:           a.StartTime(),
		EndTime:             a.EndTime(),
		StartingPrice:       a.StartingPrice().Amount(),
		CurrentLowestBid:    a.CurrentLowestBid().Amount(),
		LowestBidder:        a.LowestBidder().Bytes(),
		BidCount:            a.BidCount(),
		Status:              int(a.Status()),
		LastUpdated:         a.LastUpdated(),
		Bids:                bids,
	}
}

// toDomain converts a database row with its ledger to an auction aggregate
// via RestoreAuction.
func toDomain(dto AuctionDTO) (*auction.Auction, error) {
	id, err := kernel.NewEntityID(dto.ID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.NewEntityID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	producer, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	startingPrice, err := kernel.NewMoney(dto.StartingPrice)
	if err != nil {
		return nil, err
	}

	currentLowestBid, err := kernel.NewMoney(dto.CurrentLowestBid)
	if err != nil {
		return nil, err
	}

	var lowestBidder kernel.UUID
	if dto.LowestBidder != uuid.Nil {
		if lowestBidder, err = kernel.UUIDFromBytes(dto.LowestBidder[:]); err != nil {
			return nil, err
		}
	}

	bids := make([]*auction.Bid, 0, len(dto.Bids))
	for _, b := range dto.Bids {
		bid, bidErr := bidToDomain(b)
		if bidErr != nil {
			return nil, bidErr
		}
		bids = append(bids, bid)
	}

	return auction.RestoreAuction(
		id, productID, producer,
		dto.Title, dto.Description, dto.Origin, dto.Destination,
		dto.Weight, dto.SpecialRequirements,
		dto.StartTime, dto.EndTime,
		startingPrice, currentLowestBid, lowestBidder,
		dto.BidCount,
		auction.Status(dto.Status),
		dto.LastUpdated,
		bids,
	)
}

// bidToDomain converts a bid row to a ledger entry via RestoreBid.
func bidToDomain(dto BidDTO) (*auction.Bid, error) {
	carrier, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return auction.RestoreBid(dto.Seq, carrier, amount, dto.Notes, dto.Timestamp, dto.Active)
}
