package queries_test

import (
	"context"
	"testing"
	"time"

	"freightbid/internal/adapters/out/postgres/productrepo"
	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetProductsWithoutAuctionsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProductsWithoutAuctionsQueryHandler
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProductsWithoutAuctionsQueryHandler(db)
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetProductsWithoutAuctionsQuery(0, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) TestHandle_ExcludesLinkedAndInactive() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	producer := kernel.NewUUID()
	repo := productrepo.NewGormProductRepository(suite.db, &mockAggregateTracker{})

	auctionable := suite.seedProduct(1, producer, "Wheat", now)

	linked := suite.seedProduct(2, producer, "Barley", now)
	suite.Require().NoError(linked.LinkAuction(entityID(7), now))
	suite.Require().NoError(repo.Update(context.Background(), linked))

	retired := suite.seedProduct(3, producer, "Rye", now)
	suite.Require().NoError(retired.ChangeStatus(product.Inactive, now))
	suite.Require().NoError(repo.Update(context.Background(), retired))

	query, err := queries.NewGetProductsWithoutAuctionsQuery(0, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(auctionable.ID()))
	suite.Equal("Wheat", result[0].Name)
	suite.True(result[0].LinkedAuctionID.IsZero())
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) TestHandle_UnlinkedProductReappears() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	producer := kernel.NewUUID()
	repo := productrepo.NewGormProductRepository(suite.db, &mockAggregateTracker{})

	p := suite.seedProduct(1, producer, "Wheat", now)
	suite.Require().NoError(p.LinkAuction(entityID(7), now))
	suite.Require().NoError(repo.Update(context.Background(), p))

	p.UnlinkAuction(now)
	suite.Require().NoError(repo.Update(context.Background(), p))

	query, err := queries.NewGetProductsWithoutAuctionsQuery(0, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(p.ID()))
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProductsWithoutAuctionsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProductsWithoutAuctionsQuery constructor")
}

func (suite *GetProductsWithoutAuctionsQueryHandlerTestSuite) seedProduct(
	id int64, producer kernel.UUID, name string, now time.Time,
) *product.Product {
	p, err := product.NewProduct(
		entityID(id), producer, name, "20 tons", "Winter harvest, bagged",
		money(500), now)
	suite.Require().NoError(err)

	repo := productrepo.NewGormProductRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), p))
	return p
}

func TestGetProductsWithoutAuctionsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductsWithoutAuctionsQueryHandlerTestSuite))
}
