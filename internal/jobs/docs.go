// Package jobs provides scheduled background tasks for the auction marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. AuctionSettlementJob - Runs every five seconds to complete auctions whose
// bidding deadline has passed, declaring the lowest active bidder the winner
// (or marking the auction failed when no active bids remain).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(settleExpiredAuctionsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The settlement job uses the cron expression "*/5 * * * * *", so an expired
// auction is settled within five seconds of its deadline. Settlement is also
// triggered synchronously when anyone calls the complete endpoint after the
// deadline, so the job is a backstop rather than the only path.
//
// # Error Handling
//
// - Settlement errors are logged and retried on the next tick; the sweep is
// idempotent because it only selects auctions still in the active status
// - Failed job starts will stop any already running jobs
package jobs
