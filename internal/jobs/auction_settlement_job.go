package jobs

import (
	"context"
	"log/slog"

	"freightbid/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AuctionSettlementJob manages the scheduled settlement of expired auctions.
// Runs every five seconds to complete auctions whose deadline has passed,
// so a winner is declared even when nobody calls the complete endpoint.
type AuctionSettlementJob struct {
	handler commands.SettleExpiredAuctionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAuctionSettlementJob creates a new job for settling expired auctions.
func NewAuctionSettlementJob(handler commands.SettleExpiredAuctionsCommandHandler, logger *slog.Logger) *AuctionSettlementJob {
	return &AuctionSettlementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auction_settlement_job"),
	}
}

// Start begins the settlement job to run every five seconds.
func (j *AuctionSettlementJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewSettleExpiredAuctionsCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Auction settlement job failed to build command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Auction settlement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auction settlement job started (running every five seconds)")
	return nil
}

// Stop stops the settlement job.
func (j *AuctionSettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auction settlement job stopped")
}
