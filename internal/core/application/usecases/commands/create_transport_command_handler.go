package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CreateTransportCommandHandler opens a transport record for a completed
// auction's winning carrier.
type CreateTransportCommandHandler struct {
	uowFactory TransportUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewCreateTransportCommandHandler creates a handler.
func NewCreateTransportCommandHandler(
	uowFactory TransportUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (CreateTransportCommandHandler, error) {
	if uowFactory == nil {
		return CreateTransportCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return CreateTransportCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return CreateTransportCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return CreateTransportCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle opens the record. Only the carrier that won the completed auction
// may open one, and the auctioned product must still be Active; origin,
// destination and the parties are copied from the auction. Opening a second
// record for the same auction is not blocked here, GetByAuction exists so
// callers can detect it first.
func (h CreateTransportCommandHandler) Handle(
	ctx context.Context, cmd CreateTransportCommand,
) (kernel.EntityID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.NoEntityID(), err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.NoEntityID(), err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := requireRole(ctx, uow.PrincipalRepository(), cmd.Actor(), principal.Carrier); err != nil {
		return kernel.NoEntityID(), err
	}

	a, err := uow.AuctionRepository().Get(ctx, cmd.AuctionID())
	if err != nil {
		return kernel.NoEntityID(), fmt.Errorf("get auction: %w", err)
	}
	if !a.IsWonBy(cmd.Actor()) {
		return kernel.NoEntityID(), errs.NewUnauthorizedError(
			"caller must be the winning carrier of the completed auction")
	}

	p, err := uow.ProductRepository().Get(ctx, a.ProductID())
	if err != nil {
		return kernel.NoEntityID(), fmt.Errorf("get auctioned product: %w", err)
	}
	if p.Status() != product.Active {
		return kernel.NoEntityID(), errs.NewStateConflictError(
			"transport cannot be opened while the product is not active")
	}

	transportID, err := uow.TransportRepository().NextID(ctx)
	if err != nil {
		return kernel.NoEntityID(), fmt.Errorf("next transport id: %w", err)
	}

	now := h.clock.Now()
	t, err := transport.NewTransportRecord(
		transportID, a.ID(), a.ProductID(),
		cmd.Actor(), a.Producer(),
		a.Origin(), a.Destination(),
		cmd.EstimatedDeliveryTime(), now,
	)
	if err != nil {
		return kernel.NoEntityID(), err
	}

	if err := uow.TransportRepository().Add(ctx, t); err != nil {
		return kernel.NoEntityID(), fmt.Errorf("persist transport: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return kernel.NoEntityID(), err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:      ports.EventTransportEvent,
		Kind:      "Created",
		EntityID:  transportID.Value(),
		RelatedID: a.ID().Value(),
		Actor:     cmd.Actor().String(),
		At:        now,
	})

	return transportID, nil
}
