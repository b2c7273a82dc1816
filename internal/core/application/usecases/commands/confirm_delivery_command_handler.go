package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler records the producer's receipt
// acknowledgement.
type ConfirmDeliveryCommandHandler struct {
	uowFactory TransportUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewConfirmDeliveryCommandHandler creates a handler.
func NewConfirmDeliveryCommandHandler(
	uowFactory TransportUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (ConfirmDeliveryCommandHandler, error) {
	if uowFactory == nil {
		return ConfirmDeliveryCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return ConfirmDeliveryCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return ConfirmDeliveryCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return ConfirmDeliveryCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle confirms the delivery. Only the transport's producer may confirm,
// only once, and only after the transport reads Delivered.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	if !t.IsProducer(cmd.Actor()) {
		return errs.NewUnauthorizedError("caller must be the transport's producer")
	}

	if err := t.ConfirmDelivery(); err != nil {
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
		Kind:     "Confirmed",
		EntityID: t.ID().Value(),
		Actor:    cmd.Actor().String(),
		At:       h.clock.Now(),
	})

	return nil
}
