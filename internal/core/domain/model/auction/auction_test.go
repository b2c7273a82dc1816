package auction_test

import (
	"testing"
	"time"

	"freightbid/internal/core/domain/model/auction"
	"freightbid/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func validEntityID(t *testing.T, value int64) kernel.EntityID {
	t.Helper()
	id, err := kernel.NewEntityID(value)
	require.NoError(t, err)
	return id
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func createValidAuction(t *testing.T, now time.Time) *auction.Auction {
	t.Helper()
	a, err := auction.NewAuction(
		validEntityID(t, 1), validEntityID(t, 2), kernel.NewUUID(),
		"Grain haul", "20 tons of wheat to the port", "Hamburg", "Rotterdam",
		time.Hour, money(t, 1000), "", 20000, now)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func TestNewAuction(t *testing.T) {
	now := time.Now()
	producer := kernel.NewUUID()

	t.Run("should create auction with valid parameters", func(t *testing.T) {
		a, err := auction.NewAuction(
			validEntityID(t, 1), validEntityID(t, 2), producer,
			"Grain haul", "Wheat to the port", "Hamburg", "Rotterdam",
			2*time.Hour, money(t, 1000), "refrigerated", 20000, now)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, auction.ActiveStatus, a.Status())
		assert.Equal(t, now, a.StartTime())
		assert.Equal(t, now.Add(2*time.Hour), a.EndTime())
		assert.Equal(t, int64(1000), a.StartingPrice().Amount())
		assert.Equal(t, int64(1000), a.CurrentLowestBid().Amount())
		assert.True(t, a.LowestBidder().IsZero())
		assert.Equal(t, 0, a.BidCount())
		assert.Empty(t, a.Bids())
		assert.Equal(t, "refrigerated", a.SpecialRequirements())
		assert.True(t, a.Producer().IsEqual(producer))
	})

	t.Run("should return error for empty title", func(t *testing.T) {
		_, err := auction.NewAuction(
			validEntityID(t, 1), validEntityID(t, 2), producer,
			"", "desc", "A", "B", time.Hour, money(t, 1000), "", 100, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, auction.ErrTitleIsRequired)
	})

	t.Run("should return error for non-positive duration", func(t *testing.T) {
		_, err := auction.NewAuction(
			validEntityID(t, 1), validEntityID(t, 2), producer,
			"title", "desc", "A", "B", 0, money(t, 1000), "", 100, now)

		require.Error(t, err)
	})

	t.Run("should return error for non-positive weight", func(t *testing.T) {
		_, err := auction.NewAuction(
			validEntityID(t, 1), validEntityID(t, 2), producer,
			"title", "desc", "A", "B", time.Hour, money(t, 1000), "", 0, now)

		require.Error(t, err)
	})
}

func TestPlaceBid(t *testing.T) {
	now := time.Now()

	t.Run("should accept a bid below the starting price", func(t *testing.T) {
		a := createValidAuction(t, now)
		carrier := kernel.NewUUID()

		err := a.PlaceBid(carrier, money(t, 900), "two day estimate", now.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, int64(900), a.CurrentLowestBid().Amount())
		assert.True(t, a.LowestBidder().IsEqual(carrier))
		assert.Equal(t, 1, a.BidCount())
		require.Len(t, a.Bids(), 1)
		assert.Equal(t, 1, a.Bids()[0].Seq())
		assert.True(t, a.Bids()[0].IsActive())
	})

	t.Run("should reject a bid equal to the current lowest", func(t *testing.T) {
		a := createValidAuction(t, now)

		err := a.PlaceBid(kernel.NewUUID(), money(t, 1000), "", now.Add(time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, auction.ErrBidIsNotLower)
		assert.Equal(t, 0, a.BidCount())
	})

	t.Run("should reject a bid above the current lowest", func(t *testing.T) {
		a := createValidAuction(t, now)
		require.NoError(t, a.PlaceBid(kernel.NewUUID(), money(t, 800), "", now.Add(time.Minute)))

		err := a.PlaceBid(kernel.NewUUID(), money(t, 900), "", now.Add(2*time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, auction.ErrBidIsNotLower)
	})

	t.Run("should reject a bid after the deadline", func(t *testing.T) {
		a := createValidAuction(t, now)

		err := a.PlaceBid(kernel.NewUUID(), money(t, 900), "", now.Add(time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, auction.ErrAuctionEnded)
	})

	t.Run("amounts decrease monotonically across carriers", func(t *testing.T) {
		a := createValidAuction(t, now)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, a.PlaceBid(first, money(t, 900), "", now.Add(time.Minute)))
		require.NoError(t, a.PlaceBid(second, money(t, 850), "", now.Add(2*time.Minute)))

		assert.Equal(t, int64(850), a.CurrentLowestBid().Amount())
		assert.True(t, a.LowestBidder().IsEqual(second))
		assert.Equal(t, 2, a.BidCount())
	})

	t.Run("re-placing supersedes the carrier's prior bid", func(t *testing.T) {
		a := createValidAuction(t, now)
		carrier := kernel.NewUUID()

		require.NoError(t, a.PlaceBid(carrier, money(t, 900), "", now.Add(time.Minute)))
		require.NoError(t, a.PlaceBid(carrier, money(t, 800), "", now.Add(2*time.Minute)))

		require.Len(t, a.Bids(), 2)
		assert.False(t, a.Bids()[0].IsActive())
		assert.True(t, a.Bids()[1].IsActive())
		assert.Equal(t, 2, a.BidCount())
		assert.Equal(t, int64(800), a.CurrentLowestBid().Amount())
		assert.Len(t, a.ActiveBids(), 1)
	})
}

func TestUpdateBid(t *testing.T) {
	now := time.Now()

	t.Run("should replace the carrier's active bid", func(t *testing.T) {
		a := createValidAuction(t, now)
		carrier := kernel.NewUUID()
		require.NoError(t, a.PlaceBid(carrier, money(t, 900), "", now.Add(time.Minute)))

		err := a.UpdateBid(carrier, money(t, 700), "faster truck", now.Add(2*time.Minute))

		require.NoError(t, err)
		require.Len(t, a.Bids(), 2)
		assert.False(t, a.Bids()[0].IsActive())
		assert.Equal(t, int64(700), a.CurrentLowestBid().Amount())
		// Updates do not count as placements.
		assert.Equal(t, 1, a.BidCount())
	})

	t.Run("should fail without an active bid", func(t *testing.T) {
		a := createValidAuction(t, now)

		err := a.UpdateBid(kernel.NewUUID(), money(t, 700), "", now.Add(time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, auction.ErrNoActiveBid)
	})

	t.Run("raising the winning amount hands the lead to the next lowest", func(t *testing.T) {
		a := createValidAuction(t, now)
		leader := kernel.NewUUID()
		runnerUp := kernel.NewUUID()
		require.NoError(t, a.PlaceBid(runnerUp, money(t, 900), "", now.Add(time.Minute)))
		require.NoError(t, a.PlaceBid(leader, money(t, 800), "", now.Add(2*time.Minute)))

		require.NoError(t, a.UpdateBid(leader, money(t, 950), "", now.Add(3*time.Minute)))

		assert.Equal(t, int64(900), a.CurrentLowestBid().Amount())
		assert.True(t, a.LowestBidder().IsEqual(runnerUp))
	})

	t.Run("equal amounts keep the earlier arrival in the lead", func(t *testing.T) {
		a := createValidAuction(t, now)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, a.PlaceBid(first, money(t, 900), "", now.Add(time.Minute)))
		require.NoError(t, a.PlaceBid(second, money(t, 800), "", now.Add(2*time.Minute)))

		// The second carrier raises to match the first; the tie goes to the
		// earlier ledger entry.
		require.NoError(t, a.UpdateBid(second, money(t, 900), "", now.Add(3*time.Minute)))

		assert.Equal(t, int64(900), a.CurrentLowestBid().Amount())
		assert.True(t, a.LowestBidder().IsEqual(first))
	})
}

func TestCancelBid(t *testing.T) {
	now := time.Now()

	t.Run("should deactivate the bid and promote the next lowest", func(t *testing.T) {
		a := createValidAuction(t, now)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, a.PlaceBid(first, money(t, 900), "", now.Add(time.Minute)))
		require.NoError(t, a.PlaceBid(second, money(t, 800), "", now.Add(2*time.Minute)))

		require.NoError(t, a.CancelBid(second, now.Add(3*time.Minute)))

		assert.Equal(t, int64(900), a.CurrentLowestBid().Amount())
		assert.True(t, a.LowestBidder().IsEqual(first))
		// The ledger keeps the cancelled entry.
		assert.Len(t, a.Bids(), 2)
		assert.Len(t, a.ActiveBids(), 1)
	})

	t.Run("cancelling the only bid falls back to the starting price", func(t *testing.T) {
		a := createValidAuction(t, now)
		carrier := kernel.NewUUID()
		require.NoError(t, a.PlaceBid(carrier, money(t, 900), "", now.Add(time.Minute)))

		require.NoError(t, a.CancelBid(carrier, now.Add(2*time.Minute)))

		assert.Equal(t, int64(1000), a.CurrentLowestBid().Amount())
		assert.True(t, a.LowestBidder().IsZero())
	})

	t.Run("should fail without an active bid", func(t *testing.T) {
		a := createValidAuction(t, now)

		err := a.CancelBid(kernel.NewUUID(), now.Add(time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, auction.ErrNoActiveBid)
	})
}

func TestCompleteAuction(t *testing.T) {
	now := time.Now()

	t.Run("lowest active bid wins", func(t *testing.T) {
		a := createValidAuction(t, now)
		winner := kernel.NewUUID()
		require.NoError(t, a.PlaceBid(kernel.NewUUID(), money(t, 900), "", now.Add(time.Minute)))
		require.NoError(t, a.PlaceBid(winner, money(t, 850), "", now.Add(2*time.Minute)))

		require.NoError(t, a.Complete(now.Add(time.Hour)))

		assert.Equal(t, auction.CompletedStatus, a.Status())
		assert.True(t, a.HasWinner())
		assert.True(t, a.IsWonBy(winner))
		assert.Equal(t, int64(850), a.CurrentLowestBid().Amount())
	})

	t.Run("completes without winner when no active bids remain", func(t *testing.T) {
		a := createValidAuction(t, now)
		carrier := kernel.NewUUID()
		require.NoError(t, a.PlaceBid(carrier, money(t, 900), "", now.Add(time.Minute)))
		require.NoError(t, a.CancelBid(carrier, now.Add(2*time.Minute)))

		require.NoError(t, a.Complete(now.Add(time.Hour)))

		assert.Equal(t, auction.CompletedStatus, a.Status())
		assert.False(t, a.HasWinner())
		assert.True(t, a.LowestBidder().IsZero())
	})

	t.Run("completing twice is a state conflict", func(t *testing.T) {
		a := createValidAuction(t, now)
		require.NoError(t, a.Complete(now.Add(time.Hour)))

		require.Error(t, a.Complete(now.Add(2*time.Hour)))
	})

	t.Run("no bids are accepted after completion", func(t *testing.T) {
		a := createValidAuction(t, now)
		require.NoError(t, a.Complete(now.Add(time.Minute)))

		err := a.PlaceBid(kernel.NewUUID(), money(t, 900), "", now.Add(2*time.Minute))

		require.Error(t, err)
	})
}

func TestCancelAuction(t *testing.T) {
	now := time.Now()

	t.Run("should cancel an active auction", func(t *testing.T) {
		a := createValidAuction(t, now)

		require.NoError(t, a.Cancel(now.Add(time.Minute)))

		assert.Equal(t, auction.CancelledStatus, a.Status())
		assert.False(t, a.HasWinner())
	})

	t.Run("cancelling a completed auction is a state conflict", func(t *testing.T) {
		a := createValidAuction(t, now)
		require.NoError(t, a.Complete(now.Add(time.Minute)))

		require.Error(t, a.Cancel(now.Add(2*time.Minute)))
	})
}

func TestTimeRemaining(t *testing.T) {
	now := time.Now()
	a := createValidAuction(t, now)

	assert.Equal(t, 30*time.Minute, a.TimeRemaining(now.Add(30*time.Minute)))
	assert.Equal(t, time.Duration(0), a.TimeRemaining(now.Add(time.Hour)))
	assert.Equal(t, time.Duration(0), a.TimeRemaining(now.Add(2*time.Hour)))

	require.NoError(t, a.Cancel(now.Add(time.Minute)))
	assert.Equal(t, time.Duration(0), a.TimeRemaining(now.Add(2*time.Minute)))
}

func TestIsEnded(t *testing.T) {
	now := time.Now()
	a := createValidAuction(t, now)

	assert.False(t, a.IsEnded(now.Add(59*time.Minute)))
	// The deadline itself is already "ended".
	assert.True(t, a.IsEnded(now.Add(time.Hour)))
	assert.True(t, a.IsEnded(now.Add(61*time.Minute)))
}

func TestRestoreAuction(t *testing.T) {
	now := time.Now()
	carrier := kernel.NewUUID()
	producer := kernel.NewUUID()

	bid, err := auction.RestoreBid(1, carrier, money(t, 900), "notes", now.Add(time.Minute), true)
	require.NoError(t, err)

	a, err := auction.RestoreAuction(
		validEntityID(t, 1), validEntityID(t, 2), producer,
		"Grain haul", "desc", "Hamburg", "Rotterdam", 20000, "",
		now, now.Add(time.Hour), money(t, 1000), money(t, 900), carrier,
		1, auction.CompletedStatus, now.Add(30*time.Minute), []*auction.Bid{bid})

	require.NoError(t, err)
	assert.Equal(t, auction.CompletedStatus, a.Status())
	assert.True(t, a.IsWonBy(carrier))
	assert.Equal(t, 1, a.BidCount())
	require.Len(t, a.Bids(), 1)
	assert.Equal(t, int64(900), a.Bids()[0].Amount().Amount())
}
