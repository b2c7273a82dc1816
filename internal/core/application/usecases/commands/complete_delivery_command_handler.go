package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler marks a transport as delivered.
type CompleteDeliveryCommandHandler struct {
	uowFactory TransportUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler.
func NewCompleteDeliveryCommandHandler(
	uowFactory TransportUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (CompleteDeliveryCommandHandler, error) {
	if uowFactory == nil {
		return CompleteDeliveryCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return CompleteDeliveryCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return CompleteDeliveryCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle completes the delivery: a final checkpoint is recorded, the status
// becomes Delivered and the actual delivery time is stamped. Carrier only.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	if err := t.CompleteDelivery(cmd.FinalLocation(), cmd.Actor(), now); err != nil {
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
		Kind:     "Delivered",
		EntityID: t.ID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
