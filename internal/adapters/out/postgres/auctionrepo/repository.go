package auctionrepo

import (
	"context"
	"errors"
	"time"

	"freightbid/internal/adapters/out/postgres/counters"
	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAuctionRepository implements AuctionRepository using GORM.
type GormAuctionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAuctionRepository creates a new GORM auction repository.
func NewGormAuctionRepository(db *gorm.DB, tracker aggregateTracker) *GormAuctionRepository {
	return &GormAuctionRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID reserves the next sequential auction identifier.
func (r *GormAuctionRepository) NextID(ctx context.Context) (kernel.EntityID, error) {
	return counters.Next(ctx, r.db, counters.AuctionCounter)
}

// Add saves a new auction with its bid ledger to the database.
func (r *GormAuctionRepository) Add(ctx context.Context, aggregate *auction.Auction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing auction to the database. The ledger is
// append-only with flag flips, so FullSaveAssociations upserting every entry
// by (auction_id, seq) matches its semantics exactly: existing rows keep
// their key and new versions insert at the tail.
func (r *GormAuctionRepository) Update(ctx context.Context, aggregate *auction.Auction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an auction by ID with its complete bid ledger.
func (r *GormAuctionRepository) Get(ctx context.Context, id kernel.EntityID) (*auction.Auction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AuctionDTO
	err := r.db.WithContext(ctx).
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("auction", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllExpiredActive retrieves Active auctions whose deadline has passed as
// of now, oldest deadline first. Used by the settlement sweep.
func (r *GormAuctionRepository) GetAllExpiredActive(
	ctx context.Context, now time.Time,
) ([]*auction.Auction, error) {
	var dtos []AuctionDTO
	err := r.db.WithContext(ctx).
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("status = ? AND end_time <= ?", int(auction.ActiveStatus), now).
		Order("end_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	auctions := make([]*auction.Auction, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}

	return auctions, nil
}
