package commands_test

import (
	"context"
	"testing"
	"time"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations shared by the handler tests in this package.

type MockPrincipalRepository struct {
	mock.Mock
}

func (m *MockPrincipalRepository) Save(ctx context.Context, aggregate *principal.Principal) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPrincipalRepository) Get(ctx context.Context, id kernel.UUID) (*principal.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principal.Principal), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) NextID(ctx context.Context) (kernel.EntityID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.EntityID), args.Error(1)
}

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.EntityID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockAuctionRepository struct {
	mock.Mock
}

func (m *MockAuctionRepository) NextID(ctx context.Context) (kernel.EntityID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.EntityID), args.Error(1)
}

func (m *MockAuctionRepository) Add(ctx context.Context, aggregate *auction.Auction) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAuctionRepository) Update(ctx context.Context, aggregate *auction.Auction) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAuctionRepository) Get(ctx context.Context, id kernel.EntityID) (*auction.Auction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *MockAuctionRepository) GetAllExpiredActive(
	ctx context.Context, now time.Time,
) ([]*auction.Auction, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auction.Auction), args.Error(1)
}

type MockTransportRepository struct {
	mock.Mock
}

func (m *MockTransportRepository) NextID(ctx context.Context) (kernel.EntityID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.EntityID), args.Error(1)
}

func (m *MockTransportRepository) Add(ctx context.Context, aggregate *transport.TransportRecord) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransportRepository) Update(ctx context.Context, aggregate *transport.TransportRecord) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransportRepository) Get(
	ctx context.Context, id kernel.EntityID,
) (*transport.TransportRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.TransportRecord), args.Error(1)
}

func (m *MockTransportRepository) GetByAuction(
	ctx context.Context, auctionID kernel.EntityID,
) ([]*transport.TransportRecord, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TransportRecord), args.Error(1)
}

type MockAccessUoW struct {
	mock.Mock
}

func (m *MockAccessUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccessUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccessUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccessUoW) PrincipalRepository() ports.PrincipalRepository {
	args := m.Called()
	return args.Get(0).(ports.PrincipalRepository)
}

type MockAccessUoWFactory struct {
	mock.Mock
}

func (m *MockAccessUoWFactory) Create() commands.AccessUoW {
	args := m.Called()
	return args.Get(0).(commands.AccessUoW)
}

type MockProductUoW struct {
	mock.Mock
}

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) PrincipalRepository() ports.PrincipalRepository {
	args := m.Called()
	return args.Get(0).(ports.PrincipalRepository)
}

func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct {
	mock.Mock
}

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockAuctionUoW struct {
	mock.Mock
}

func (m *MockAuctionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuctionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuctionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuctionUoW) PrincipalRepository() ports.PrincipalRepository {
	args := m.Called()
	return args.Get(0).(ports.PrincipalRepository)
}

func (m *MockAuctionUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockAuctionUoW) AuctionRepository() ports.AuctionRepository {
	args := m.Called()
	return args.Get(0).(ports.AuctionRepository)
}

type MockAuctionUoWFactory struct {
	mock.Mock
}

func (m *MockAuctionUoWFactory) Create() commands.AuctionUoW {
	args := m.Called()
	return args.Get(0).(commands.AuctionUoW)
}

type MockTransportUoW struct {
	mock.Mock
}

func (m *MockTransportUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransportUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransportUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransportUoW) PrincipalRepository() ports.PrincipalRepository {
	args := m.Called()
	return args.Get(0).(ports.PrincipalRepository)
}

func (m *MockTransportUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockTransportUoW) AuctionRepository() ports.AuctionRepository {
	args := m.Called()
	return args.Get(0).(ports.AuctionRepository)
}

func (m *MockTransportUoW) TransportRepository() ports.TransportRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportRepository)
}

type MockTransportUoWFactory struct {
	mock.Mock
}

func (m *MockTransportUoWFactory) Create() commands.TransportUoW {
	args := m.Called()
	return args.Get(0).(commands.TransportUoW)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Test fixture helpers.

func fixedClock(now time.Time) ports.Clock {
	return ports.ClockFunc(func() time.Time { return now })
}

func testEntityID(t *testing.T, value int64) kernel.EntityID {
	t.Helper()
	id, err := kernel.NewEntityID(value)
	require.NoError(t, err)
	return id
}

func testMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func principalWithRoles(t *testing.T, id kernel.UUID, roles ...principal.Role) *principal.Principal {
	t.Helper()
	p, err := principal.RestorePrincipal(id, roles)
	require.NoError(t, err)
	return p
}

func activeAuction(t *testing.T, id int64, producer kernel.UUID, now time.Time) *auction.Auction {
	t.Helper()
	a, err := auction.NewAuction(
		testEntityID(t, id), testEntityID(t, id+100), producer,
		"Grain haul", "Wheat to the port", "Hamburg", "Rotterdam",
		time.Hour, testMoney(t, 1000), "", 20000, now)
	require.NoError(t, err)
	return a
}

func activeProduct(t *testing.T, id int64, producer kernel.UUID, now time.Time) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		testEntityID(t, id), producer, "Wheat", "20 tons", "Winter wheat, bagged",
		testMoney(t, 500), now)
	require.NoError(t, err)
	return p
}

func inTransitRecord(
	t *testing.T, id int64, carrier, producer kernel.UUID, now time.Time,
) *transport.TransportRecord {
	t.Helper()
	record, err := transport.NewTransportRecord(
		testEntityID(t, id), testEntityID(t, id+100), testEntityID(t, id+200),
		carrier, producer, "Hamburg", "Rotterdam", now.Add(48*time.Hour), now)
	require.NoError(t, err)
	return record
}
