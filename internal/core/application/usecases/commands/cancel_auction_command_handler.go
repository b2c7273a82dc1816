package commands

import (
	"context"
	"errors"
	"fmt"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CancelAuctionCommandHandler withdraws an auction and frees its product for
// a new one.
type CancelAuctionCommandHandler struct {
	uowFactory AuctionUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewCancelAuctionCommandHandler creates a handler.
func NewCancelAuctionCommandHandler(
	uowFactory AuctionUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (CancelAuctionCommandHandler, error) {
	if uowFactory == nil {
		return CancelAuctionCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return CancelAuctionCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return CancelAuctionCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return CancelAuctionCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle cancels the auction. Only the owning producer or an admin may
// cancel. Unlike completion the product's auction link is cleared, so the
// product can be auctioned again.
func (h CancelAuctionCommandHandler) Handle(ctx context.Context, cmd CancelAuctionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	caller, err := uow.PrincipalRepository().Get(ctx, cmd.Actor())
	if err != nil {
		return fmt.Errorf("get principal: %w", err)
	}

	a, err := uow.AuctionRepository().Get(ctx, cmd.AuctionID())
	if err != nil {
		return fmt.Errorf("get auction: %w", err)
	}

	if !a.IsOwnedBy(caller.ID()) && !isAdmin(caller) {
		return errs.NewUnauthorizedError("caller must be the owning producer or an admin")
	}

	now := h.clock.Now()
	if err := a.Cancel(now); err != nil {
		return err
	}

	p, err := uow.ProductRepository().Get(ctx, a.ProductID())
	if err != nil {
		return fmt.Errorf("get auctioned product: %w", err)
	}
	p.UnlinkAuction(now)

	if err := errors.Join(
		uow.AuctionRepository().Update(ctx, a),
		uow.ProductRepository().Update(ctx, p),
	); err != nil {
		return fmt.Errorf("persist auction: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:      ports.EventAuctionCancelled,
		EntityID:  a.ID().Value(),
		RelatedID: p.ID().Value(),
		Actor:     cmd.Actor().String(),
		At:        now,
	})

	return nil
}
