package commands_test

import (
	"testing"
	"time"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCheckpointCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	start := time.Now().Add(-time.Hour)
	now := time.Now()
	carrier := kernel.NewUUID()
	producer := kernel.NewUUID()

	record := inTransitRecord(t, 1, carrier, producer, start)

	cmd, err := commands.NewAddCheckpointCommand(carrier, record.ID(), "Bremen", "left the depot")
	require.NoError(t, err)

	mockTransports := new(MockTransportRepository)
	mockUoW := new(MockTransportUoW)
	mockFactory := new(MockTransportUoWFactory)
	publisher := new(MockEventPublisher)

	mockUoW.On("TransportRepository").Return(mockTransports)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockTransports.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		mockTransports.On("Update", ctx, record).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.Event")).Return(nil).Once()

	handler, err := commands.NewAddCheckpointCommandHandler(mockFactory, fixedClock(now), publisher)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Len(t, record.Checkpoints(), 1)
	assert.Equal(t, "Bremen", record.Checkpoints()[0].Location())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockTransports.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAddCheckpointCommandHandler_Handle_NotCarrier(t *testing.T) {
	// Arrange
	ctx := t.Context()
	start := time.Now().Add(-time.Hour)
	carrier := kernel.NewUUID()
	producer := kernel.NewUUID()

	record := inTransitRecord(t, 1, carrier, producer, start)

	cmd, err := commands.NewAddCheckpointCommand(producer, record.ID(), "Bremen", "")
	require.NoError(t, err)

	mockTransports := new(MockTransportRepository)
	mockUoW := new(MockTransportUoW)
	mockFactory := new(MockTransportUoWFactory)
	publisher := new(MockEventPublisher)

	mockUoW.On("TransportRepository").Return(mockTransports)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockTransports.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler, err := commands.NewAddCheckpointCommandHandler(mockFactory, fixedClock(time.Now()), publisher)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Empty(t, record.Checkpoints())
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestAddCheckpointCommandHandler_Handle_TransportDelivered(t *testing.T) {
	// Arrange
	ctx := t.Context()
	start := time.Now().Add(-time.Hour)
	now := time.Now()
	carrier := kernel.NewUUID()
	producer := kernel.NewUUID()

	record := inTransitRecord(t, 1, carrier, producer, start)
	require.NoError(t, record.CompleteDelivery("Rotterdam", carrier, start.Add(30*time.Minute)))

	cmd, err := commands.NewAddCheckpointCommand(carrier, record.ID(), "Bremen", "")
	require.NoError(t, err)

	mockTransports := new(MockTransportRepository)
	mockUoW := new(MockTransportUoW)
	mockFactory := new(MockTransportUoWFactory)
	publisher := new(MockEventPublisher)

	mockUoW.On("TransportRepository").Return(mockTransports)
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockTransports.On("Get", ctx, record.ID()).Return(record, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler, err := commands.NewAddCheckpointCommandHandler(mockFactory, fixedClock(now), publisher)
	require.NoError(t, err)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrTransportNotProgressing)
	mockTransports.AssertNotCalled(t, "Update", ctx, record)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}
