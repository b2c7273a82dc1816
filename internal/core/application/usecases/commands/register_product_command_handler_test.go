package commands_test

import (
	"testing"
	"time"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterProductCommand(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewRegisterProductCommand(actor, "Wheat", "Winter wheat", "20 tons", testMoney(t, 500))
		require.NoError(t, err)
		assert.Equal(t, "Wheat", cmd.Name())
		assert.Equal(t, "20 tons", cmd.Quantity())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := commands.NewRegisterProductCommand(actor, "", "details", "20 tons", testMoney(t, 500))
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProductNameIsRequired)
	})

	t.Run("should reject empty details", func(t *testing.T) {
		_, err := commands.NewRegisterProductCommand(actor, "Wheat", "", "20 tons", testMoney(t, 500))
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProductDetailsAreRequired)
	})

	t.Run("should reject empty quantity", func(t *testing.T) {
		_, err := commands.NewRegisterProductCommand(actor, "Wheat", "details", "", testMoney(t, 500))
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProductQuantityIsRequired)
	})

	t.Run("should accept zero unit price", func(t *testing.T) {
		_, err := commands.NewRegisterProductCommand(actor, "Wheat", "details", "20 tons", kernel.Money{})
		require.NoError(t, err)
	})
}

func TestRegisterProductCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	now := time.Now()
	producer := kernel.NewUUID()
	productID := testEntityID(t, 7)

	cmd, err := commands.NewRegisterProductCommand(producer, "Wheat", "Winter wheat", "20 tons", testMoney(t, 500))
	require.NoError(t, err)

	mockPrincipals := new(MockPrincipalRepository)
	mockProducts := new(MockProductRepository)
	mockUoW := new(MockProductUoW)
	mockFactory := new(MockProductUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PrincipalRepository").Return(mockPrincipals).Once(),
		mockPrincipals.On("Get", ctx, producer).
			Return(principalWithRoles(t, producer, principal.Producer), nil).Once(),
		mockUoW.On("ProductRepository").Return(mockProducts).Once(),
		mockProducts.On("NextID", ctx).Return(productID, nil).Once(),
		mockProducts.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Return(nil).Once()

	handler, err := commands.NewRegisterProductCommandHandler(mockFactory, fixedClock(now), publisher)
	require.NoError(t, err)

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, id.IsEqual(productID))
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockPrincipals.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRegisterProductCommandHandler_Handle_NotProducer(t *testing.T) {
	// Arrange
	ctx := t.Context()
	actor := kernel.NewUUID()

	cmd, err := commands.NewRegisterProductCommand(actor, "Wheat", "Winter wheat", "20 tons", testMoney(t, 500))
	require.NoError(t, err)

	mockPrincipals := new(MockPrincipalRepository)
	mockUoW := new(MockProductUoW)
	mockFactory := new(MockProductUoWFactory)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PrincipalRepository").Return(mockPrincipals).Once(),
		mockPrincipals.On("Get", ctx, actor).
			Return(principalWithRoles(t, actor, principal.Carrier), nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler, err := commands.NewRegisterProductCommandHandler(mockFactory, fixedClock(time.Now()), publisher)
	require.NoError(t, err)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "Publish", ctx, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockPrincipals.AssertExpectations(t)
}
