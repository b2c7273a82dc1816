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

type GetProductsByProducerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProductsByProducerQueryHandler
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetProductsByProducerQueryHandler(db)
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetProductsByProducerQuery(kernel.NewUUID(), 0, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) TestHandle_FiltersByProducerNewestFirst() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	producer := kernel.NewUUID()
	other := kernel.NewUUID()

	older := suite.seedProduct(1, producer, "Wheat", now)
	newer := suite.seedProduct(2, producer, "Barley", now)
	suite.seedProduct(3, other, "Rye", now)

	query, err := queries.NewGetProductsByProducerQuery(producer, 0, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.Equal("Barley", result[0].Name)
	suite.True(result[0].Producer.IsEqual(producer))
	suite.Equal(int64(500), result[0].UnitPrice.Amount())
	suite.Equal(product.Active, result[0].Status)
	suite.True(result[0].LinkedAuctionID.IsZero())
	suite.True(result[1].ID.IsEqual(older.ID()))
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) TestHandle_Pagination() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	producer := kernel.NewUUID()

	middle := suite.seedProduct(1, producer, "Wheat", now)
	suite.seedProduct(2, producer, "Barley", now)
	suite.seedProduct(3, producer, "Rye", now)

	// Newest first, so offset 2 lands on the oldest row.
	query, err := queries.NewGetProductsByProducerQuery(producer, 2, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(middle.ID()))
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProductsByProducerQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProductsByProducerQuery constructor")
}

func (suite *GetProductsByProducerQueryHandlerTestSuite) seedProduct(
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

func TestGetProductsByProducerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductsByProducerQueryHandlerTestSuite))
}
