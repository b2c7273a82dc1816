package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "freightbid/internal/adapters/out/postgres"
	"freightbid/internal/adapters/out/postgres/auctionrepo"
	"freightbid/internal/adapters/out/postgres/counters"
	"freightbid/internal/adapters/out/postgres/principalrepo"
	"freightbid/internal/adapters/out/postgres/productrepo"
	"freightbid/internal/adapters/out/postgres/transportrepo"
	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// for all tests and runs the schema migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&counters.CounterDTO{},
		&principalrepo.PrincipalDTO{},
		&principalrepo.PrincipalRoleDTO{},
		&productrepo.ProductDTO{},
		&auctionrepo.AuctionDTO{},
		&auctionrepo.BidDTO{},
		&transportrepo.TransportDTO{},
		&transportrepo.CheckpointDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE checkpoints, transports, bids, auctions, products, principal_roles, principals, counters").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.PrincipalRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow2.AuctionRepository())
	suite.NotNil(uow2.TransportRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testProduct := suite.createTestProduct(ctx, uow, kernel.NewUUID())

	retrieved, err := uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testProduct.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testProduct.ID()))
	suite.Equal(product.Active, retrieved.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	producer := kernel.NewUUID()
	now := time.Now()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Register the product and open an auction for it in one transaction.
	testProduct := suite.createTestProduct(ctx, uow, producer)

	auctionID, err := uow.AuctionRepository().NextID(ctx)
	suite.Require().NoError(err)

	a, err := auction.NewAuction(
		auctionID, testProduct.ID(), producer,
		"Grain haul", "Wheat to the port", "Hamburg", "Rotterdam",
		time.Hour, suite.money(1000), "", 20000, now)
	suite.Require().NoError(err)

	suite.Require().NoError(testProduct.LinkAuction(auctionID, now))
	suite.Require().NoError(uow.AuctionRepository().Add(ctx, a))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, testProduct))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedAuction, err := newUow.AuctionRepository().Get(ctx, auctionID)
	suite.Require().NoError(err)
	suite.True(retrievedAuction.ProductID().IsEqual(testProduct.ID()))

	retrievedProduct, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrievedProduct.LinkedAuctionID().IsEqual(auctionID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testProduct := suite.createTestProduct(ctx, uow, kernel.NewUUID())

	p, err := principal.NewPrincipal(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(p.Grant(principal.Producer))
	suite.Require().NoError(uow.PrincipalRepository().Save(ctx, p))

	// Both writes are visible inside the transaction.
	_, err = uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().Error(err, "Product should not exist after rollback")

	restored, err := newUow.PrincipalRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Empty(restored.Roles(), "Role grant should not survive rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	// Fixed ids avoid the shared counter row, which would serialize the two
	// open transactions against each other.
	product1 := suite.newProductWithID(1001, kernel.NewUUID())
	product2 := suite.newProductWithID(1002, kernel.NewUUID())
	suite.Require().NoError(uow1.ProductRepository().Add(ctx, product1))
	suite.Require().NoError(uow2.ProductRepository().Add(ctx, product2))

	_, err := uow1.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "UOW1 should see its own product")

	_, err = uow1.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "UOW1 should not see the other transaction's product")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "Committed product should persist")

	_, err = newUow.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "Rolled-back product should not persist")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Without Begin, repository writes auto-commit on the main connection.
	testProduct := suite.createTestProduct(ctx, uow, kernel.NewUUID())

	newUow := suite.factory.Create()
	retrieved, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testProduct.ID()))
}

// TestUnitOfWork_MarketplaceWorkflow runs the whole happy path through real
// persistence: register, auction, bid, settle, transport, deliver, confirm.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MarketplaceWorkflow() {
	ctx := context.Background()
	producer := kernel.NewUUID()
	carrier := kernel.NewUUID()
	start := time.Now().Add(-2 * time.Hour)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testProduct := suite.createTestProduct(ctx, uow, producer)

	auctionID, err := uow.AuctionRepository().NextID(ctx)
	suite.Require().NoError(err)
	a, err := auction.NewAuction(
		auctionID, testProduct.ID(), producer,
		"Grain haul", "Wheat to the port", "Hamburg", "Rotterdam",
		time.Hour, suite.money(1000), "", 20000, start)
	suite.Require().NoError(err)
	suite.Require().NoError(testProduct.LinkAuction(auctionID, start))
	suite.Require().NoError(uow.AuctionRepository().Add(ctx, a))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, testProduct))

	suite.Require().NoError(a.PlaceBid(carrier, suite.money(900), "two day estimate", start.Add(time.Minute)))
	suite.Require().NoError(a.PlaceBid(kernel.NewUUID(), suite.money(950), "", start.Add(2*time.Minute)))
	suite.Require().NoError(uow.AuctionRepository().Update(ctx, a))

	now := time.Now()
	suite.Require().NoError(a.Complete(now))
	suite.Require().NoError(uow.AuctionRepository().Update(ctx, a))

	transportID, err := uow.TransportRepository().NextID(ctx)
	suite.Require().NoError(err)
	record, err := transport.NewTransportRecord(
		transportID, a.ID(), testProduct.ID(), carrier, producer,
		a.Origin(), a.Destination(), now.Add(48*time.Hour), now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TransportRepository().Add(ctx, record))

	suite.Require().NoError(record.AddCheckpoint("Bremen", "left the depot", carrier, now.Add(time.Hour)))
	suite.Require().NoError(record.CompleteDelivery("Rotterdam", carrier, now.Add(2*time.Hour)))
	suite.Require().NoError(record.ConfirmDelivery())
	suite.Require().NoError(uow.TransportRepository().Update(ctx, record))

	suite.Require().NoError(uow.Commit(ctx))

	// Verify the final state through a fresh unit of work.
	newUow := suite.factory.Create()

	finalAuction, err := newUow.AuctionRepository().Get(ctx, auctionID)
	suite.Require().NoError(err)
	suite.Equal(auction.CompletedStatus, finalAuction.Status())
	suite.True(finalAuction.IsWonBy(carrier))
	suite.Len(finalAuction.Bids(), 2)

	finalTransport, err := newUow.TransportRepository().Get(ctx, transportID)
	suite.Require().NoError(err)
	suite.Equal(transport.Delivered, finalTransport.Status())
	suite.True(finalTransport.ProducerConfirmed())
	suite.Len(finalTransport.Checkpoints(), 2)

	byAuction, err := newUow.TransportRepository().GetByAuction(ctx, auctionID)
	suite.Require().NoError(err)
	suite.Require().Len(byAuction, 1)
	suite.True(byAuction[0].ID().IsEqual(transportID))
}

// TestUnitOfWork_SettlementSweep verifies the expired-auction query the
// settlement job relies on runs against committed state only.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SettlementSweep() {
	ctx := context.Background()
	producer := kernel.NewUUID()
	start := time.Now().Add(-2 * time.Hour)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	expiredProduct := suite.createTestProduct(ctx, uow, producer)
	expiredID, err := uow.AuctionRepository().NextID(ctx)
	suite.Require().NoError(err)
	expired, err := auction.NewAuction(
		expiredID, expiredProduct.ID(), producer,
		"Expired haul", "desc", "Hamburg", "Rotterdam",
		time.Hour, suite.money(1000), "", 20000, start)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AuctionRepository().Add(ctx, expired))

	openProduct := suite.createTestProduct(ctx, uow, producer)
	openID, err := uow.AuctionRepository().NextID(ctx)
	suite.Require().NoError(err)
	open, err := auction.NewAuction(
		openID, openProduct.ID(), producer,
		"Open haul", "desc", "Hamburg", "Rotterdam",
		24*time.Hour, suite.money(1000), "", 20000, start)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AuctionRepository().Add(ctx, open))

	suite.Require().NoError(uow.Commit(ctx))

	sweep := suite.factory.Create()
	found, err := sweep.AuctionRepository().GetAllExpiredActive(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].ID().IsEqual(expiredID))
}

// createTestProduct registers a product through the unit of work's
// repositories, reserving its id from the shared counter.
func (suite *UnitOfWorkIntegrationTestSuite) createTestProduct(
	ctx context.Context, uow ports.UnitOfWork, producer kernel.UUID,
) *product.Product {
	id, err := uow.ProductRepository().NextID(ctx)
	suite.Require().NoError(err)

	p, err := product.NewProduct(id, producer, "Wheat", "20 tons", "Winter wheat, bagged",
		suite.money(500), time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) newProductWithID(id int64, producer kernel.UUID) *product.Product {
	entityID, err := kernel.NewEntityID(id)
	suite.Require().NoError(err)

	p, err := product.NewProduct(entityID, producer, "Wheat", "20 tons", "Winter wheat, bagged",
		suite.money(500), time.Now())
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
