package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// UpdateBidCommandHandler replaces a carrier's active bid with a new version.
type UpdateBidCommandHandler struct {
	uowFactory AuctionUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewUpdateBidCommandHandler creates a handler.
func NewUpdateBidCommandHandler(
	uowFactory AuctionUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (UpdateBidCommandHandler, error) {
	if uowFactory == nil {
		return UpdateBidCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return UpdateBidCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return UpdateBidCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return UpdateBidCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle revises the caller's active bid. Like placement, revision is frozen
// while the product is not Active.
func (h UpdateBidCommandHandler) Handle(ctx context.Context, cmd UpdateBidCommand) error {
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
	if err := a.UpdateBid(cmd.Actor(), cmd.Amount(), cmd.Notes(), now); err != nil {
		return err
	}

	if err := uow.AuctionRepository().Update(ctx, a); err != nil {
		return fmt.Errorf("persist auction: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventBidUpdated,
		EntityID: a.ID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
