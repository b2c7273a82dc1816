package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// PlaceBidCommandHandler records a carrier's bid on an active auction.
type PlaceBidCommandHandler struct {
	uowFactory AuctionUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewPlaceBidCommandHandler creates a handler.
func NewPlaceBidCommandHandler(
	uowFactory AuctionUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (PlaceBidCommandHandler, error) {
	if uowFactory == nil {
		return PlaceBidCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return PlaceBidCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return PlaceBidCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return PlaceBidCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle places the bid. Bidding is frozen while the auctioned product is not
// Active, so a recall mid-auction stops new offers without ending the auction.
func (h PlaceBidCommandHandler) Handle(ctx context.Context, cmd PlaceBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if _, err := requireRole(ctx, uow.PrincipalRepository(), cmd.Actor(), principal.Carrier); err != nil {
		return err
	}

	a, err := uow.AuctionRepository().Get(ctx, cmd.AuctionID())
	if err != nil {
		return fmt.Errorf("get auction: %w", err)
	}

	p, err := uow.ProductRepository().Get(ctx, a.ProductID())
	if err != nil {
		return fmt.Errorf("get auctioned product: %w", err)
	}
	if p.Status() != product.Active {
		return errs.NewStateConflictError("bidding is frozen while the product is not active")
	}

	now := h.clock.Now()
	if err := a.PlaceBid(cmd.Actor(), cmd.Amount(), cmd.Notes(), now); err != nil {
		return err
	}

	if err := uow.AuctionRepository().Update(ctx, a); err != nil {
		return fmt.Errorf("persist auction: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventBidPlaced,
		EntityID: a.ID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
