package auction

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrBidIsNotConstructed is returned when using an improperly initialized Bid.
var ErrBidIsNotConstructed = errors.New("Bid must be created via newBid or RestoreBid")

// Bid is an entry in an auction's append-only bid ledger. The ledger keeps
// every submitted version in arrival order; supersession and cancellation
// flip the active flag instead of removing entries, so monetary amounts and
// timestamps are never altered retroactively.
type Bid struct {
	seq       int
	carrier   kernel.UUID
	amount    kernel.Money
	notes     string
	timestamp time.Time
	active    bool

	guard guard.ConstructorGuard
}

// newBid appends-constructs a bid. Only the owning auction creates bids; seq
// is its 1-based position in the ledger.
func newBid(seq int, carrier kernel.UUID, amount kernel.Money, notes string, now time.Time) (*Bid, error) {
	if err := carrier.Validate(); err != nil {
		return nil, err
	}

	return &Bid{
		seq:       seq,
		carrier:   carrier,
		amount:    amount,
		notes:     notes,
		timestamp: now,
		active:    true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreBid reconstructs a bid ledger entry from persistence.
func RestoreBid(seq int, carrier kernel.UUID, amount kernel.Money, notes string, timestamp time.Time, active bool) (*Bid, error) {
	b, err := newBid(seq, carrier, amount, notes, timestamp)
	if err != nil {
		return nil, err
	}
	b.active = active
	return b, nil
}

// Validate ensures the bid was created via a constructor.
func (b *Bid) Validate() error {
	if b == nil {
		return ErrBidIsNotConstructed
	}
	return b.guard.Validate(ErrBidIsNotConstructed)
}

// Seq returns the bid's 1-based position in the auction's ledger.
func (b *Bid) Seq() int {
	return b.seq
}

// Carrier returns the bidding carrier's identity.
func (b *Bid) Carrier() kernel.UUID {
	return b.carrier
}

// Amount returns the offered transport price.
func (b *Bid) Amount() kernel.Money {
	return b.amount
}

// Notes returns the carrier's free-text estimated-delivery notes.
func (b *Bid) Notes() string {
	return b.notes
}

// Timestamp returns the submission time of this ledger entry.
func (b *Bid) Timestamp() time.Time {
	return b.timestamp
}

// IsActive reports whether this entry is the carrier's current bid. Inactive
// entries stay in the ledger as history.
func (b *Bid) IsActive() bool {
	return b.active
}

func (b *Bid) deactivate() {
	b.active = false
}
