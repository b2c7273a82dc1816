package transportrepo

import (
	"context"
	"errors"

	"freightbid/internal/adapters/out/postgres/counters"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportRepository implements TransportRepository using GORM.
type GormTransportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormTransportRepository creates a new GORM transport repository.
func NewGormTransportRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportRepository {
	return &GormTransportRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID reserves the next sequential transport identifier.
func (r *GormTransportRepository) NextID(ctx context.Context) (kernel.EntityID, error) {
	return counters.Next(ctx, r.db, counters.TransportCounter)
}

// Add saves a new transport record with its checkpoint trail.
func (r *GormTransportRepository) Add(ctx context.Context, aggregate *transport.TransportRecord) error {
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

// Update saves an existing transport record. The trail is append-only, so
// upserting every entry by (transport_id, seq) preserves its history while
// inserting new tail entries.
func (r *GormTransportRepository) Update(ctx context.Context, aggregate *transport.TransportRecord) error {
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

// Get retrieves a transport record by ID with its complete checkpoint trail.
func (r *GormTransportRepository) Get(
	ctx context.Context, id kernel.EntityID,
) (*transport.TransportRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportDTO
	err := r.db.WithContext(ctx).
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAuction retrieves the transport records opened for an auction, oldest
// first.
func (r *GormTransportRepository) GetByAuction(
	ctx context.Context, auctionID kernel.EntityID,
) ([]*transport.TransportRecord, error) {
	if err := auctionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransportDTO
	err := r.db.WithContext(ctx).
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("auction_id = ?", auctionID.Value()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*transport.TransportRecord, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, t)
	}

	return records, nil
}
