// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. Every command runs inside one unit of work: the marketplace's
// serialized execution model maps onto a database transaction per operation,
// with all repositories of the operation bound to the same transaction.
//
// Aggregates modified during the transaction are tracked, which keeps the
// door open for an outbox-style event pipeline later.
package postgres

import (
	"context"

	"freightbid/internal/adapters/out/postgres/auctionrepo"
	"freightbid/internal/adapters/out/postgres/principalrepo"
	"freightbid/internal/adapters/out/postgres/productrepo"
	"freightbid/internal/adapters/out/postgres/transportrepo"
	"freightbid/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection. Each business operation gets a fresh instance, isolated from
// concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories of a single business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an instance that already
// has one is a no-op; transactions never nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. After commit the instance cannot be
// reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Safe to defer after a successful
// commit: the gorm.ErrInvalidTransaction it returns then is ignored by
// callers.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PrincipalRepository returns a principal repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) PrincipalRepository() ports.PrincipalRepository {
	return principalrepo.NewGormPrincipalRepository(uow.conn(), uow)
}

// ProductRepository returns a product repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// AuctionRepository returns an auction repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AuctionRepository() ports.AuctionRepository {
	return auctionrepo.NewGormAuctionRepository(uow.conn(), uow)
}

// TransportRepository returns a transport repository bound to the current
// transaction.
func (uow *GormUnitOfWork) TransportRepository() ports.TransportRepository {
	return transportrepo.NewGormTransportRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Repository implementations call it on Add, Update and Save.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
