package commands

import (
	"context"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// ChangeProductStatusCommandHandler handles product status changes. The
// caller must be the owning producer or an admin.
type ChangeProductStatusCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewChangeProductStatusCommandHandler creates a handler for product status changes.
func NewChangeProductStatusCommandHandler(
	uowFactory ProductUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (ChangeProductStatusCommandHandler, error) {
	if uowFactory == nil {
		return ChangeProductStatusCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return ChangeProductStatusCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return ChangeProductStatusCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return ChangeProductStatusCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle processes the status change command.
func (h ChangeProductStatusCommandHandler) Handle(ctx context.Context, cmd ChangeProductStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products := uow.ProductRepository()
	p, err := products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !p.IsOwnedBy(cmd.Actor()) {
		caller, callerErr := uow.PrincipalRepository().Get(ctx, cmd.Actor())
		if callerErr != nil {
			return callerErr
		}
		if !isAdmin(caller) {
			return errs.NewUnauthorizedError("caller must be the owning producer or an admin")
		}
	}

	now := h.clock.Now()
	if err = p.ChangeStatus(cmd.NewStatus(), now); err != nil {
		return err
	}

	if err = products.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventProductStatusChanged,
		Kind:     cmd.NewStatus().String(),
		EntityID: cmd.ProductID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})
	return nil
}
