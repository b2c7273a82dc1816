package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// UpdateTransportStatusCommandHandler moves a transport along its lifecycle.
type UpdateTransportStatusCommandHandler struct {
	uowFactory TransportUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewUpdateTransportStatusCommandHandler creates a handler.
func NewUpdateTransportStatusCommandHandler(
	uowFactory TransportUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (UpdateTransportStatusCommandHandler, error) {
	if uowFactory == nil {
		return UpdateTransportStatusCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return UpdateTransportStatusCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return UpdateTransportStatusCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return UpdateTransportStatusCommandHandler{
		uowFactory: uowFactory, clock: clock, publisher: publisher,
	}, nil
}

// Handle applies the status change. The transport's carrier, its producer or
// an admin may drive the lifecycle; marking Delivered stays with the carrier.
// The aggregate records an automatic checkpoint for the transition and
// rejects moves the status graph does not allow.
func (h UpdateTransportStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateTransportStatusCommand,
) error {
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
		caller, callerErr := uow.PrincipalRepository().Get(ctx, cmd.Actor())
		if callerErr != nil {
			return callerErr
		}
		if !isAdmin(caller) {
			return errs.NewUnauthorizedError(
				"caller must be the transport's carrier, its producer or an admin")
		}
	}
	if cmd.NewStatus() == transport.Delivered && !t.IsCarrier(cmd.Actor()) {
		return errs.NewUnauthorizedError("only the transport's carrier may mark it delivered")
	}

	now := h.clock.Now()
	if err := t.ChangeStatus(cmd.NewStatus(), cmd.Notes(), cmd.Actor(), now); err != nil {
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
		Kind:     cmd.NewStatus().String(),
		EntityID: t.ID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
