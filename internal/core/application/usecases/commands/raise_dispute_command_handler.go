package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// RaiseDisputeCommandHandler moves a transport into the Disputed state.
type RaiseDisputeCommandHandler struct {
	uowFactory TransportUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewRaiseDisputeCommandHandler creates a handler.
func NewRaiseDisputeCommandHandler(
	uowFactory TransportUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (RaiseDisputeCommandHandler, error) {
	if uowFactory == nil {
		return RaiseDisputeCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return RaiseDisputeCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return RaiseDisputeCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return RaiseDisputeCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle raises the dispute. Either party to the transport may dispute while
// it is still progressing; Disputed is terminal.
func (h RaiseDisputeCommandHandler) Handle(ctx context.Context, cmd RaiseDisputeCommand) error {
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
	if !t.IsCarrier(cmd.Actor()) && !t.IsProducer(cmd.Actor()) {
		return errs.NewUnauthorizedError("caller must be a party to the transport")
	}

	now := h.clock.Now()
	if err := t.RaiseDispute(cmd.Reason(), cmd.Actor(), now); err != nil {
		return err
	}

	if err := uow.TransportRepository().Update(ctx, t); err != nil {
		return fmt.Errorf("persist transport: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventTransportEvent,
		Kind:     "Disputed",
		EntityID: t.ID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
