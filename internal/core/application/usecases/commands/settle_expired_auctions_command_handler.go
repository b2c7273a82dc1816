package commands

import (
	"context"
	"fmt"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// SettleExpiredAuctionsCommandHandler completes every Active auction whose
// deadline has passed. It backs the scheduled settlement job, so a winner is
// declared promptly even when nobody calls completion by hand.
type SettleExpiredAuctionsCommandHandler struct {
	uowFactory AuctionUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewSettleExpiredAuctionsCommandHandler creates a handler.
func NewSettleExpiredAuctionsCommandHandler(
	uowFactory AuctionUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (SettleExpiredAuctionsCommandHandler, error) {
	if uowFactory == nil {
		return SettleExpiredAuctionsCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return SettleExpiredAuctionsCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return SettleExpiredAuctionsCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return SettleExpiredAuctionsCommandHandler{
		uowFactory: uowFactory, clock: clock, publisher: publisher,
	}, nil
}

// Handle sweeps expired Active auctions and completes each one. All
// completions commit in one transaction.
func (h SettleExpiredAuctionsCommandHandler) Handle(
	ctx context.Context, cmd SettleExpiredAuctionsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	now := h.clock.Now()
	expired, err := uow.AuctionRepository().GetAllExpiredActive(ctx, now)
	if err != nil {
		return fmt.Errorf("get expired auctions: %w", err)
	}
	if len(expired) == 0 {
		return nil
	}

	for _, a := range expired {
		if err := a.Complete(now); err != nil {
			return fmt.Errorf("complete auction %s: %w", a.ID(), err)
		}
		if err := uow.AuctionRepository().Update(ctx, a); err != nil {
			return fmt.Errorf("persist auction %s: %w", a.ID(), err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, a := range expired {
		_ = h.publisher.Publish(ctx, ports.Event{
			Name:     ports.EventAuctionCompleted,
			EntityID: a.ID().Value(),
			Subject:  a.LowestBidder().String(),
			At:       now,
		})
	}

	return nil
}
