package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// AddCheckpointCommandHandler records a location checkpoint on a transport.
type AddCheckpointCommandHandler struct {
	uowFactory TransportUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewAddCheckpointCommandHandler creates a handler.
func NewAddCheckpointCommandHandler(
	uowFactory TransportUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (AddCheckpointCommandHandler, error) {
	if uowFactory == nil {
		return AddCheckpointCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return AddCheckpointCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return AddCheckpointCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return AddCheckpointCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle appends the checkpoint. Only the transport's carrier may record
// checkpoints, and only while the transport is still progressing.
func (h AddCheckpointCommandHandler) Handle(ctx context.Context, cmd AddCheckpointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	t, err := uow.TransportRepository().Get(ctx, cmd.TransportID())
	if err != nil {
		return fmt.Errorf("get transport: %w", err)
	}
	if !t.IsCarrier(cmd.Actor()) {
		return errs.NewUnauthorizedError("caller must be the transport's carrier")
	}

	now := h.clock.Now()
	if err := t.AddCheckpoint(cmd.Location(), cmd.Notes(), cmd.Actor(), now); err != nil {
		return err
	}

	if err := uow.TransportRepository().Update(ctx, t); err != nil {
		return fmt.Errorf("persist transport: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventCheckpointAdded,
		EntityID: t.ID().Value(),
		Kind:     cmd.Location(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
