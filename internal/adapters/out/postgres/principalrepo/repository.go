package principalrepo

import (
	"context"
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPrincipalRepository implements PrincipalRepository using GORM.
type GormPrincipalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormPrincipalRepository creates a new GORM principal repository.
func NewGormPrincipalRepository(db *gorm.DB, tracker aggregateTracker) *GormPrincipalRepository {
	return &GormPrincipalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the principal and replaces its role rows with the current
// set. Replacement rather than merge: a revoked role must disappear from the
// store, and the role set is small enough that rewriting it is cheaper than
// diffing.
func (r *GormPrincipalRepository) Save(ctx context.Context, aggregate *principal.Principal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	db := r.db.WithContext(ctx)
	err := db.Omit("Roles").Clauses(clause.OnConflict{DoNothing: true}).Create(&PrincipalDTO{ID: dto.ID}).Error
	if err != nil {
		return err
	}

	if err = db.Where("principal_id = ?", dto.ID).Delete(&PrincipalRoleDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Roles) > 0 {
		if err = db.Create(&dto.Roles).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a principal by identity. An identity with no stored row is
// returned as a principal holding no roles, so callers check roles uniformly
// without distinguishing "never seen" from "no grants".
func (r *GormPrincipalRepository) Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrincipalDTO
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return principal.NewPrincipal(id)
		}
		return nil, err
	}

	return toDomain(dto)
}
