package commands

import (
	"context"
	"errors"
	"fmt"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CreateAuctionCommandHandler opens a reverse auction for a product.
type CreateAuctionCommandHandler struct {
	uowFactory AuctionUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewCreateAuctionCommandHandler creates a handler.
func NewCreateAuctionCommandHandler(
	uowFactory AuctionUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (CreateAuctionCommandHandler, error) {
	if uowFactory == nil {
		return CreateAuctionCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return CreateAuctionCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return CreateAuctionCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return CreateAuctionCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle opens the auction and links it to the product. Only the owning
// producer may auction a product, and a product can back at most one active
// auction at a time.
func (h CreateAuctionCommandHandler) Handle(
	ctx context.Context, cmd CreateAuctionCommand,
) (kernel.EntityID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.NoEntityID(), err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.NoEntityID(), err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	caller, err := requireRole(ctx, uow.PrincipalRepository(), cmd.Actor(), principal.Producer)
	if err != nil {
		return kernel.NoEntityID(), err
	}

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return kernel.NoEntityID(), fmt.Errorf("get product: %w", err)
	}

	if !p.IsOwnedBy(caller.ID()) && !isAdmin(caller) {
		return kernel.NoEntityID(), errs.NewUnauthorizedError(
			"caller must be the owning producer or an admin")
	}
	if p.Status() != product.Active {
		return kernel.NoEntityID(), errs.NewStateConflictError(
			"only active products can be auctioned")
	}

	auctionID, err := uow.AuctionRepository().NextID(ctx)
	if err != nil {
		return kernel.NoEntityID(), fmt.Errorf("next auction id: %w", err)
	}

	now := h.clock.Now()
	a, err := auction.NewAuction(
		auctionID, p.ID(), p.Producer(),
		cmd.Title(), cmd.Description(), cmd.Origin(), cmd.Destination(),
		cmd.Duration(), cmd.StartingPrice(), cmd.SpecialRequirements(), cmd.Weight(),
		now,
	)
	if err != nil {
		return kernel.NoEntityID(), err
	}

	if err := p.LinkAuction(auctionID, now); err != nil {
		return kernel.NoEntityID(), err
	}

	if err := errors.Join(
		uow.AuctionRepository().Add(ctx, a),
		uow.ProductRepository().Update(ctx, p),
	); err != nil {
		return kernel.NoEntityID(), fmt.Errorf("persist auction: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.NoEntityID(), err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:      ports.EventAuctionCreated,
		EntityID:  auctionID.Value(),
		RelatedID: p.ID().Value(),
		Actor:     cmd.Actor().String(),
		At:        now,
	})

	return auctionID, nil
}
