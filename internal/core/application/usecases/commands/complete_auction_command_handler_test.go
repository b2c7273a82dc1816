package commands_test

import (
	"testing"
	"time"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteAuctionCommandHandler_Handle_OwnerClosesEarly(t *testing.T) {
	// Arrange
	ctx := t.Context()
	now := time.Now()
	producer := kernel.NewUUID()
	carrier := kernel.NewUUID()

	a := activeAuction(t, 1, producer, now.Add(-time.Minute))
	require.NoError(t, a.PlaceBid(carrier, testMoney(t, 900), "", now))

	cmd, err := commands.NewCompleteAuctionCommand(producer, a.ID())
	require.NoError(t, err)

	mockPrincipals := new(MockPrincipalRepository)
	mockAuctions := new(MockAuctionRepository)
	mockUoW := new(MockAuctionUoW)
	mockFactory := new(MockAuctionUoWFactory)
	publisher := new(MockEventPublisher)

	mockUoW.On("PrincipalRepository").Return(mockPrincipals)
	mockUoW.On("AuctionRepository").Return(mockAuctions)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockPrincipals.On("Get", ctx, producer).
			Return(principalWithRoles(t, producer), nil).Once(),
		mockAuctions.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		mockAuctions.On("Update", ctx, a).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Return(nil).Once()

	handler, err := commands.NewCompleteAuctionCommandHandler(mockFactory, fixedClock(now), publisher)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, auction.CompletedStatus, a.Status())
	assert.True(t, a.IsWonBy(carrier))
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockAuctions.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCompleteAuctionCommandHandler_Handle_StrangerClosesEarly(t *testing.T) {
	// Arrange
	ctx := t.Context()
	now := time.Now()
	producer := kernel.NewUUID()
	stranger := kernel.NewUUID()

	a := activeAuction(t, 1, producer, now.Add(-time.Minute))

	cmd, err := commands.NewCompleteAuctionCommand(stranger, a.ID())
	require.NoError(t, err)

	mockPrincipals := new(MockPrincipalRepository)
	mockAuctions := new(MockAuctionRepository)
	mockUoW := new(MockAuctionUoW)
	mockFactory := new(MockAuctionUoWFactory)
	publisher := new(MockEventPublisher)

	mockUoW.On("PrincipalRepository").Return(mockPrincipals)
	mockUoW.On("AuctionRepository").Return(mockAuctions)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockPrincipals.On("Get", ctx, stranger).
			Return(principalWithRoles(t, stranger), nil).Once(),
		mockAuctions.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler, err := commands.NewCompleteAuctionCommandHandler(mockFactory, fixedClock(now), publisher)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, auction.ActiveStatus, a.Status())
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCompleteAuctionCommandHandler_Handle_AnyoneAfterDeadline(t *testing.T) {
	// Arrange
	ctx := t.Context()
	start := time.Now().Add(-2 * time.Hour)
	afterDeadline := start.Add(90 * time.Minute)
	producer := kernel.NewUUID()
	stranger := kernel.NewUUID()

	a := activeAuction(t, 1, producer, start)

	cmd, err := commands.NewCompleteAuctionCommand(stranger, a.ID())
	require.NoError(t, err)

	mockPrincipals := new(MockPrincipalRepository)
	mockAuctions := new(MockAuctionRepository)
	mockUoW := new(MockAuctionUoW)
	mockFactory := new(MockAuctionUoWFactory)
	publisher := new(MockEventPublisher)

	mockUoW.On("PrincipalRepository").Return(mockPrincipals)
	mockUoW.On("AuctionRepository").Return(mockAuctions)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockPrincipals.On("Get", ctx, stranger).
			Return(principalWithRoles(t, stranger), nil).Once(),
		mockAuctions.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		mockAuctions.On("Update", ctx, a).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Return(nil).Once()

	handler, err := commands.NewCompleteAuctionCommandHandler(mockFactory, fixedClock(afterDeadline), publisher)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, auction.CompletedStatus, a.Status())
	assert.False(t, a.HasWinner())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSettleExpiredAuctionsCommandHandler_Handle(t *testing.T) {
	t.Run("should complete every expired auction in one transaction", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		start := time.Now().Add(-2 * time.Hour)
		now := time.Now()
		producer := kernel.NewUUID()
		carrier := kernel.NewUUID()

		first := activeAuction(t, 1, producer, start)
		require.NoError(t, first.PlaceBid(carrier, testMoney(t, 900), "", start.Add(time.Minute)))
		second := activeAuction(t, 2, producer, start)
		expired := []*auction.Auction{first, second}

		cmd, err := commands.NewSettleExpiredAuctionsCommand()
		require.NoError(t, err)

		mockAuctions := new(MockAuctionRepository)
		mockUoW := new(MockAuctionUoW)
		mockFactory := new(MockAuctionUoWFactory)
		publisher := new(MockEventPublisher)

		mockUoW.On("AuctionRepository").Return(mockAuctions)
		mock.InOrder(
			mockUoW.On("Begin", ctx).Return(nil).Once(),
			mockAuctions.On("GetAllExpiredActive", ctx, now).Return(expired, nil).Once(),
			mockAuctions.On("Update", ctx, first).Return(nil).Once(),
			mockAuctions.On("Update", ctx, second).Return(nil).Once(),
			mockUoW.On("Commit", ctx).Return(nil).Once(),
			mockUoW.On("Rollback", ctx).Return(nil).Once(),
		)
		mockFactory.On("Create").Return(mockUoW).Once()
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Return(nil).Twice()

		handler, err := commands.NewSettleExpiredAuctionsCommandHandler(mockFactory, fixedClock(now), publisher)
		require.NoError(t, err)

		// Act
		err = handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, auction.CompletedStatus, first.Status())
		assert.True(t, first.IsWonBy(carrier))
		assert.Equal(t, auction.CompletedStatus, second.Status())
		assert.False(t, second.HasWinner())
		mockFactory.AssertExpectations(t)
		mockUoW.AssertExpectations(t)
		mockAuctions.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should do nothing when no auction has expired", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		now := time.Now()

		cmd, err := commands.NewSettleExpiredAuctionsCommand()
		require.NoError(t, err)

		mockAuctions := new(MockAuctionRepository)
		mockUoW := new(MockAuctionUoW)
		mockFactory := new(MockAuctionUoWFactory)
		publisher := new(MockEventPublisher)

		mockUoW.On("AuctionRepository").Return(mockAuctions)
		mock.InOrder(
			mockUoW.On("Begin", ctx).Return(nil).Once(),
			mockAuctions.On("GetAllExpiredActive", ctx, now).Return([]*auction.Auction{}, nil).Once(),
			mockUoW.On("Rollback", ctx).Return(nil).Once(),
		)
		mockFactory.On("Create").Return(mockUoW).Once()

		handler, err := commands.NewSettleExpiredAuctionsCommandHandler(mockFactory, fixedClock(now), publisher)
		require.NoError(t, err)

		// Act
		err = handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		mockUoW.AssertNotCalled(t, "Commit", ctx)
		publisher.AssertNotCalled(t, "Publish", ctx, mock.Anything)
		mockFactory.AssertExpectations(t)
		mockUoW.AssertExpectations(t)
		mockAuctions.AssertExpectations(t)
	})
}
