package commands

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// RegisterProductCommandHandler handles product registration. The caller
// must hold the Producer role; the new product gets the next sequential id
// and starts Active with no linked auction.
type RegisterProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewRegisterProductCommandHandler creates a handler for product registration.
func NewRegisterProductCommandHandler(
	uowFactory ProductUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (RegisterProductCommandHandler, error) {
	if uowFactory == nil {
		return RegisterProductCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return RegisterProductCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return RegisterProductCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return RegisterProductCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle processes the registration command and returns the new product id.
func (h RegisterProductCommandHandler) Handle(
	ctx context.Context, cmd RegisterProductCommand,
) (kernel.EntityID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.EntityID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := requireRole(ctx, uow.PrincipalRepository(), cmd.Actor(), principal.Producer); err != nil {
		return kernel.EntityID{}, err
	}

	products := uow.ProductRepository()
	id, err := products.NextID(ctx)
	if err != nil {
		return kernel.EntityID{}, err
	}

	now := h.clock.Now()
	p, err := product.NewProduct(id, cmd.Actor(), cmd.Name(), cmd.Quantity(), cmd.Details(), cmd.UnitPrice(), now)
	if err != nil {
		return kernel.EntityID{}, err
	}

	if err = products.Add(ctx, p); err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventProductRegistered,
		EntityID: id.Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})
	return id, nil
}
