package principalrepo_test

import (
	"context"
	"testing"
	"time"

	"freightbid/internal/adapters/out/postgres/principalrepo"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// PrincipalRepositoryIntegrationTestSuite provides integration tests for
// PrincipalRepository using PostgreSQL containers.
type PrincipalRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *principalrepo.GormPrincipalRepository
	tracker    *MockAggregateTracker
}

func (suite *PrincipalRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&principalrepo.PrincipalDTO{},
		&principalrepo.PrincipalRoleDTO{},
	))
}

func (suite *PrincipalRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE principal_roles, principals").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = principalrepo.NewGormPrincipalRepository(suite.db, suite.tracker)
}

func (suite *PrincipalRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PrincipalRepositoryIntegrationTestSuite) TestGet_UnknownPrincipalHasNoRoles() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.Roles())
}

func (suite *PrincipalRepositoryIntegrationTestSuite) TestSave_PersistsGrantedRoles() {
	ctx := context.Background()
	id := kernel.NewUUID()

	p, err := principal.NewPrincipal(id)
	suite.Require().NoError(err)
	suite.Require().NoError(p.Grant(principal.Producer))
	suite.Require().NoError(p.Grant(principal.Carrier))

	suite.Require().NoError(suite.repository.Save(ctx, p))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.True(retrieved.HasRole(principal.Producer))
	suite.True(retrieved.HasRole(principal.Carrier))
	suite.False(retrieved.HasRole(principal.Admin))
}

func (suite *PrincipalRepositoryIntegrationTestSuite) TestSave_RemovesRevokedRoles() {
	ctx := context.Background()
	id := kernel.NewUUID()

	p, err := principal.NewPrincipal(id)
	suite.Require().NoError(err)
	suite.Require().NoError(p.Grant(principal.Producer))
	suite.Require().NoError(p.Grant(principal.Admin))
	suite.Require().NoError(suite.repository.Save(ctx, p))

	suite.Require().NoError(p.Revoke(principal.Admin))
	suite.Require().NoError(suite.repository.Save(ctx, p))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.True(retrieved.HasRole(principal.Producer))
	suite.False(retrieved.HasRole(principal.Admin))
	suite.Len(retrieved.Roles(), 1)
}

func (suite *PrincipalRepositoryIntegrationTestSuite) TestSave_Idempotent() {
	ctx := context.Background()
	id := kernel.NewUUID()

	p, err := principal.NewPrincipal(id)
	suite.Require().NoError(err)
	suite.Require().NoError(p.Grant(principal.Carrier))

	suite.Require().NoError(suite.repository.Save(ctx, p))
	suite.Require().NoError(suite.repository.Save(ctx, p))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Len(retrieved.Roles(), 1)
}

func (suite *PrincipalRepositoryIntegrationTestSuite) TestSave_IsolatedPerPrincipal() {
	ctx := context.Background()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	a, err := principal.NewPrincipal(first)
	suite.Require().NoError(err)
	suite.Require().NoError(a.Grant(principal.Producer))
	suite.Require().NoError(suite.repository.Save(ctx, a))

	b, err := principal.NewPrincipal(second)
	suite.Require().NoError(err)
	suite.Require().NoError(b.Grant(principal.Carrier))
	suite.Require().NoError(suite.repository.Save(ctx, b))

	retrieved, err := suite.repository.Get(ctx, first)
	suite.Require().NoError(err)
	suite.True(retrieved.HasRole(principal.Producer))
	suite.False(retrieved.HasRole(principal.Carrier))
}

func TestPrincipalRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PrincipalRepositoryIntegrationTestSuite))
}
