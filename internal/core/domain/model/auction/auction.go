// Package auction implements the reverse-auction aggregate: a time-boxed
// auction for transporting one product, where every accepted bid must be
// strictly lower than the current best and the lowest active bid wins.
package auction

import (
	"errors"
	"fmt"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

// Domain errors for auction operations.
var (
	// ErrTitleIsRequired is returned when creating an auction without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrDescriptionIsRequired is returned when creating an auction without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrOriginIsRequired is returned when creating an auction without an origin.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when creating an auction without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrAuctionIsNotConstructed is returned when using an improperly initialized Auction.
	ErrAuctionIsNotConstructed = errors.New("Auction must be created via NewAuction constructor")
	// ErrAuctionEnded is returned when bidding after the deadline has passed.
	ErrAuctionEnded = errs.NewStateConflictError("auction deadline has passed")
	// ErrBidIsNotLower is returned when a bid is not strictly below the current lowest.
	ErrBidIsNotLower = errs.NewStateConflictError("bid must be strictly lower than the current lowest bid")
	// ErrNoActiveBid is returned when updating or cancelling a bid the carrier does not have.
	ErrNoActiveBid = errs.NewObjectNotFoundError("bid", "no active bid for carrier")
)

// Auction is the aggregate root for one reverse auction. It owns an ordered,
// append-only ledger of bids: insertion order is arrival order, entries are
// never reordered or truncated, and cancellation or supersession flips the
// active flag instead of deleting.
//
// Invariants maintained after every mutation:
//   - currentLowestBid equals the minimum amount among active bids, or the
//     starting price when none are active
//   - lowestBidder is the carrier of that minimum, or unset when none
//   - each accepted bid was strictly lower than the then-current lowest
type Auction struct {
	id                  kernel.EntityID
	productID           kernel.EntityID
	producer            kernel.UUID
	title               string
	description         string
	origin              string
	destination         string
	weight              int64
	specialRequirements string
	startTime           time.Time
	endTime             time.Time
	startingPrice       kernel.Money
	currentLowestBid    kernel.Money
	lowestBidder        kernel.UUID
	bidCount            int
	status              Status
	lastUpdated         time.Time

	bids []*Bid

	guard guard.ConstructorGuard
}

// NewAuction opens an auction for a product. The producer is copied from the
// product at creation and never changes. The deadline is now+duration, the
// current lowest bid starts at the starting price and there is no bidder.
//
// Cross-aggregate preconditions (product Active and unauctioned, caller owns
// the product) are enforced by the command handler; this constructor guards
// the auction's own invariants.
func NewAuction(
	id, productID kernel.EntityID,
	producer kernel.UUID,
	title, description, origin, destination string,
	duration time.Duration,
	startingPrice kernel.Money,
	specialRequirements string,
	weight int64,
	now time.Time,
) (*Auction, error) {
	a := &Auction{
		status:      ActiveStatus,
		startTime:   now,
		lastUpdated: now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setProductID(productID),
		a.setProducer(producer),
		a.setTitle(title),
		a.setDescription(description),
		a.setOrigin(origin),
		a.setDestination(destination),
		a.setDuration(duration),
		a.setWeight(weight),
	); err != nil {
		return nil, err
	}

	a.startingPrice = startingPrice
	a.currentLowestBid = startingPrice
	a.specialRequirements = specialRequirements
	return a, nil
}

// RestoreAuction reconstructs an auction with its bid ledger from persistence.
func RestoreAuction(
	id, productID kernel.EntityID,
	producer kernel.UUID,
	title, description, origin, destination string,
	weight int64,
	specialRequirements string,
	startTime, endTime time.Time,
	startingPrice, currentLowestBid kernel.Money,
	lowestBidder kernel.UUID,
	bidCount int,
	status Status,
	lastUpdated time.Time,
	bids []*Bid,
) (*Auction, error) {
	a, err := NewAuction(id, productID, producer, title, description, origin, destination,
		endTime.Sub(startTime), startingPrice, specialRequirements, weight, startTime)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, bid := range bids {
		if err = bid.Validate(); err != nil {
			return nil, err
		}
	}

	a.endTime = endTime
	a.currentLowestBid = currentLowestBid
	a.lowestBidder = lowestBidder
	a.bidCount = bidCount
	a.status = status
	a.lastUpdated = lastUpdated
	a.bids = bids
	return a, nil
}

// Validate ensures the auction was created via a constructor.
func (a *Auction) Validate() error {
	if a == nil {
		return ErrAuctionIsNotConstructed
	}
	return a.guard.Validate(ErrAuctionIsNotConstructed)
}

// ID returns the auction's sequential identifier.
func (a *Auction) ID() kernel.EntityID {
	return a.id
}

// ProductID returns the id of the product being transported.
func (a *Auction) ProductID() kernel.EntityID {
	return a.productID
}

// Producer returns the owning producer, copied from the product at creation.
func (a *Auction) Producer() kernel.UUID {
	return a.producer
}

// Title returns the auction title.
func (a *Auction) Title() string {
	return a.title
}

// Description returns the auction description.
func (a *Auction) Description() string {
	return a.description
}

// Origin returns the pickup descriptor.
func (a *Auction) Origin() string {
	return a.origin
}

// Destination returns the delivery descriptor.
func (a *Auction) Destination() string {
	return a.destination
}

// Weight returns the cargo weight.
func (a *Auction) Weight() int64 {
	return a.weight
}

// SpecialRequirements returns the free-text handling requirements.
func (a *Auction) SpecialRequirements() string {
	return a.specialRequirements
}

// StartTime returns the opening time.
func (a *Auction) StartTime() time.Time {
	return a.startTime
}

// EndTime returns the hard bidding deadline.
func (a *Auction) EndTime() time.Time {
	return a.endTime
}

// StartingPrice returns the producer's ceiling price.
func (a *Auction) StartingPrice() kernel.Money {
	return a.startingPrice
}

// CurrentLowestBid returns the best active bid amount, or the starting price
// when no bid is active.
func (a *Auction) CurrentLowestBid() kernel.Money {
	return a.currentLowestBid
}

// LowestBidder returns the carrier holding the best active bid. The zero
// UUID means no bidder; after completion it identifies the winner.
func (a *Auction) LowestBidder() kernel.UUID {
	return a.lowestBidder
}

// BidCount returns the number of accepted bid placements.
func (a *Auction) BidCount() int {
	return a.bidCount
}

// Status returns the auction's lifecycle status.
func (a *Auction) Status() Status {
	return a.status
}

// LastUpdated returns the time of the last mutation.
func (a *Auction) LastUpdated() time.Time {
	return a.lastUpdated
}

// IsOwnedBy reports whether the principal is the owning producer.
func (a *Auction) IsOwnedBy(principal kernel.UUID) bool {
	return a.producer.IsEqual(principal)
}

// IsEnded reports whether the bidding deadline has passed.
func (a *Auction) IsEnded(now time.Time) bool {
	return !now.Before(a.endTime)
}

// TimeRemaining returns the time left before the deadline. It is zero once
// the auction has ended or left the Active status, never negative.
func (a *Auction) TimeRemaining(now time.Time) time.Duration {
	if a.status != ActiveStatus || a.IsEnded(now) {
		return 0
	}
	return a.endTime.Sub(now)
}

// Bids returns the full append-only ledger in arrival order, inactive
// entries included.
func (a *Auction) Bids() []*Bid {
	return a.bids
}

// ActiveBids returns the currently active ledger entries in arrival order.
func (a *Auction) ActiveBids() []*Bid {
	active := make([]*Bid, 0, len(a.bids))
	for _, bid := range a.bids {
		if bid.IsActive() {
			active = append(active, bid)
		}
	}
	return active
}

// CarrierBid returns the carrier's current active bid, or nil if the carrier
// has none.
func (a *Auction) CarrierBid(carrier kernel.UUID) *Bid {
	for _, bid := range a.bids {
		if bid.IsActive() && bid.Carrier().IsEqual(carrier) {
			return bid
		}
	}
	return nil
}

// HasActiveBid reports whether the carrier currently has an active bid.
func (a *Auction) HasActiveBid(carrier kernel.UUID) bool {
	return a.CarrierBid(carrier) != nil
}

// PlaceBid accepts a carrier's bid. The bid must arrive before the deadline
// and be strictly lower than the current lowest, so accepted amounts
// decrease monotonically and ties cannot occur. A prior active bid by the
// same carrier is superseded: the old entry turns inactive and the new
// amount, notes and timestamp win.
//
// The caller must ensure the referenced product is still Active; a recall
// mid-auction freezes bidding.
func (a *Auction) PlaceBid(carrier kernel.UUID, amount kernel.Money, notes string, now time.Time) error {
	if err := a.ensureBiddable(now); err != nil {
		return err
	}
	if !amount.IsLessThan(a.currentLowestBid) {
		return ErrBidIsNotLower
	}

	if prior := a.CarrierBid(carrier); prior != nil {
		prior.deactivate()
	}

	bid, err := newBid(len(a.bids)+1, carrier, amount, notes, now)
	if err != nil {
		return err
	}

	a.bids = append(a.bids, bid)
	a.bidCount++
	a.recomputeLowest()
	a.lastUpdated = now
	return nil
}

// UpdateBid replaces the amount and notes of the carrier's existing active
// bid. The old ledger entry turns inactive and a new version is appended, so
// history is retained. The replacement amount is not required to undercut
// the global best: the lowest bid is recomputed afterwards, and a carrier
// raising its own winning figure simply hands the lead to the next-lowest
// active bid.
func (a *Auction) UpdateBid(carrier kernel.UUID, amount kernel.Money, notes string, now time.Time) error {
	if err := a.ensureBiddable(now); err != nil {
		return err
	}

	prior := a.CarrierBid(carrier)
	if prior == nil {
		return ErrNoActiveBid
	}
	prior.deactivate()

	bid, err := newBid(len(a.bids)+1, carrier, amount, notes, now)
	if err != nil {
		return err
	}

	a.bids = append(a.bids, bid)
	a.recomputeLowest()
	a.lastUpdated = now
	return nil
}

// CancelBid marks the carrier's active bid inactive and recomputes the
// lowest from the remaining active bids; if none remain the auction falls
// back to its starting price with no bidder.
func (a *Auction) CancelBid(carrier kernel.UUID, now time.Time) error {
	if err := a.ensureBiddable(now); err != nil {
		return err
	}

	prior := a.CarrierBid(carrier)
	if prior == nil {
		return ErrNoActiveBid
	}

	prior.deactivate()
	a.recomputeLowest()
	a.lastUpdated = now
	return nil
}

// Complete resolves the auction: the strictly lowest bid among those still
// active wins. With no active bids the auction still completes, with the
// winner unset. The product's auction link is deliberately kept so the
// product reads as "already resolved".
//
// Authorization is time-dependent and enforced by the command handler:
// anyone may complete past the deadline, only the owning producer or an
// admin may complete early.
func (a *Auction) Complete(now time.Time) error {
	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.recomputeLowest()
	a.status = newStatus
	a.lastUpdated = now
	return nil
}

// Cancel withdraws an Active auction. The command handler clears the
// product's auction link so the product becomes auctionable again.
func (a *Auction) Cancel(now time.Time) error {
	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.lastUpdated = now
	return nil
}

// HasWinner reports whether the completed auction resolved with a winning
// carrier.
func (a *Auction) HasWinner() bool {
	return a.status == CompletedStatus && !a.lowestBidder.IsZero()
}

// IsWonBy reports whether the principal is the winning carrier of a
// completed auction.
func (a *Auction) IsWonBy(principal kernel.UUID) bool {
	return a.HasWinner() && a.lowestBidder.IsEqual(principal)
}

func (a *Auction) ensureBiddable(now time.Time) error {
	if a.status != ActiveStatus {
		return errs.NewStateConflictErrorWithCause("auction is not active",
			fmt.Errorf("status is %s", a.status))
	}
	if a.IsEnded(now) {
		return ErrAuctionEnded
	}
	return nil
}

// recomputeLowest rescans the active ledger entries and realigns
// currentLowestBid and lowestBidder with the global minimum. Runs after
// every bid mutation so the lock-step invariant holds between calls.
func (a *Auction) recomputeLowest() {
	var lowest *Bid
	for _, bid := range a.bids {
		if !bid.IsActive() {
			continue
		}
		// Earliest arrival keeps the lead on equal amounts. Ties cannot
		// occur through placement (strictly-lower rule) but can through
		// bid updates.
		if lowest == nil || bid.Amount().IsLessThan(lowest.Amount()) {
			lowest = bid
		}
	}

	if lowest == nil {
		a.currentLowestBid = a.startingPrice
		a.lowestBidder = kernel.UUID{}
		return
	}

	a.currentLowestBid = lowest.Amount()
	a.lowestBidder = lowest.Carrier()
}

func (a *Auction) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Auction) setProductID(productID kernel.EntityID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	a.productID = productID
	return nil
}

func (a *Auction) setProducer(producer kernel.UUID) error {
	if err := producer.Validate(); err != nil {
		return err
	}
	a.producer = producer
	return nil
}

func (a *Auction) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	a.title = title
	return nil
}

func (a *Auction) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	a.description = description
	return nil
}

func (a *Auction) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	a.origin = origin
	return nil
}

func (a *Auction) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	a.destination = destination
	return nil
}

func (a *Auction) setDuration(duration time.Duration) error {
	if duration <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("duration",
			fmt.Errorf("%s is not greater than 0", duration))
	}
	a.endTime = a.startTime.Add(duration)
	return nil
}

func (a *Auction) setWeight(weight int64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weight))
	}
	a.weight = weight
	return nil
}
