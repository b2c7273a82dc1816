package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CancelBidCommandHandler withdraws a carrier's active bid.
type CancelBidCommandHandler struct {
	uowFactory AuctionUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewCancelBidCommandHandler creates a handler.
func NewCancelBidCommandHandler(
	uowFactory AuctionUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (CancelBidCommandHandler, error) {
	if uowFactory == nil {
		return CancelBidCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return CancelBidCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return CancelBidCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return CancelBidCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle withdraws the caller's active bid. Withdrawal stays available while
// the auction runs even if the product has been recalled: carriers are not
// kept locked into a frozen auction.
func (h CancelBidCommandHandler) Handle(ctx context.Context, cmd CancelBidCommand) error {
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

	now := h.clock.Now()
	if err := a.CancelBid(cmd.Actor(), now); err != nil {
		return err
	}

	if err := uow.AuctionRepository().Update(ctx, a); err != nil {
		return fmt.Errorf("persist auction: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventBidCancelled,
		EntityID: a.ID().Value(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
