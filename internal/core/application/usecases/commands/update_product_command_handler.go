package commands

import (
	"context"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// UpdateProductCommandHandler handles product updates. The caller must be
// the owning producer or an admin.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(
	uowFactory ProductUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (UpdateProductCommandHandler, error) {
	if uowFactory == nil {
		return UpdateProductCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return UpdateProductCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return UpdateProductCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return UpdateProductCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle processes the product update command.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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
	p.Update(cmd.Quantity(), cmd.UnitPrice(), cmd.Details(), now)

	if err = products.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventProductUpdated,
		EntityID: cmd.ProductID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})
	return nil
}
