package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CompleteAuctionCommandHandler resolves an auction: the lowest active bid
// wins.
type CompleteAuctionCommandHandler struct {
	uowFactory AuctionUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewCompleteAuctionCommandHandler creates a handler.
func NewCompleteAuctionCommandHandler(
	uowFactory AuctionUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (CompleteAuctionCommandHandler, error) {
	if uowFactory == nil {
		return CompleteAuctionCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return CompleteAuctionCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return CompleteAuctionCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return CompleteAuctionCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle completes the auction. Authorization is time-dependent: once the
// deadline has passed any authenticated principal may settle it, before the
// deadline only the owning producer or an admin may close early. The product
// keeps its auction link, marking it as already resolved.
func (h CompleteAuctionCommandHandler) Handle(ctx context.Context, cmd CompleteAuctionCommand) error {
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

	now := h.clock.Now()
	if !a.IsEnded(now) && !a.IsOwnedBy(caller.ID()) && !isAdmin(caller) {
		return errs.NewUnauthorizedError(
			"only the owning producer or an admin may complete an auction early")
	}

	if err := a.Complete(now); err != nil {
		return err
	}

	if err := uow.AuctionRepository().Update(ctx, a); err != nil {
		return fmt.Errorf("persist auction: %w", err)
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:     ports.EventAuctionCompleted,
		EntityID: a.ID().Value(),
		Subject:  a.LowestBidder().String(),
		Actor:    cmd.Actor().String(),
		At:       now,
	})

	return nil
}
