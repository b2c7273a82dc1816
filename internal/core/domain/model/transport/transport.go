// Package transport implements the TransportRecord aggregate: the delivery
// lifecycle of a won auction, from pickup through checkpoints to producer
// confirmation or dispute.
//
// The reference behavior imposes no one-transport-per-auction guard: nothing
// in the aggregate prevents a winning carrier from opening a second record
// for the same auction. That permissiveness is preserved here; see DESIGN.md.
package transport

import (
	"errors"
	"fmt"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

// statusUpdateLocation is the location text of checkpoints emitted
// automatically on status transitions.
const statusUpdateLocation = "Status Update"

// disputeLocation is the location text of checkpoints emitted when a
// dispute is raised.
const disputeLocation = "Dispute"

// Domain errors for transport operations.
var (
	// ErrLocationIsRequired is returned when adding a checkpoint without a location.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrOriginIsRequired is returned when creating a transport without an origin.
	ErrOriginIsRequired = errs.NewValueIsRequiredError("origin")
	// ErrDestinationIsRequired is returned when creating a transport without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrTransportIsNotConstructed is returned when using an improperly initialized TransportRecord.
	ErrTransportIsNotConstructed = errors.New("TransportRecord must be created via NewTransportRecord constructor")
	// ErrTransportNotProgressing is returned when a checkpoint or delivery is
	// attempted on a record that is no longer moving.
	ErrTransportNotProgressing = errs.NewStateConflictError("transport is not in transit or delayed")
	// ErrDeliveryAlreadyConfirmed is returned on a second producer confirmation.
	ErrDeliveryAlreadyConfirmed = errs.NewStateConflictError("delivery already confirmed")
	// ErrTransportNotDelivered is returned when confirming a delivery that has not happened.
	ErrTransportNotDelivered = errs.NewStateConflictError("transport is not delivered")
)

// TransportRecord is the aggregate root for one delivery. It back-references
// the auction it was won in and the product being moved; neither reference
// ever changes once set. The record owns an append-only checkpoint ledger
// with gapless 1-based sequence numbers.
type TransportRecord struct {
	id                    kernel.EntityID
	auctionID             kernel.EntityID
	productID             kernel.EntityID
	carrier               kernel.UUID
	producer              kernel.UUID
	origin                string
	destination           string
	startTime             time.Time
	estimatedDeliveryTime time.Time
	actualDeliveryTime    time.Time
	status                Status
	checkpointCount       int
	producerConfirmed     bool

	checkpoints []*Checkpoint

	guard guard.ConstructorGuard
}

// NewTransportRecord opens the delivery for a completed auction. The record
// starts InTransit with an empty ledger and no confirmation. Authorization
// (caller must be the auction's winning carrier) and cross-aggregate
// preconditions are enforced by the command handler.
func NewTransportRecord(
	id, auctionID, productID kernel.EntityID,
	carrier, producer kernel.UUID,
	origin, destination string,
	estimatedDeliveryTime time.Time,
	now time.Time,
) (*TransportRecord, error) {
	t := &TransportRecord{
		status:    InTransit,
		startTime: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setAuctionID(auctionID),
		t.setProductID(productID),
		t.setCarrier(carrier),
		t.setProducer(producer),
		t.setOrigin(origin),
		t.setDestination(destination),
		t.setEstimatedDeliveryTime(estimatedDeliveryTime, now),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransportRecord reconstructs a transport record with its checkpoint
// ledger from persistence.
func RestoreTransportRecord(
	id, auctionID, productID kernel.EntityID,
	carrier, producer kernel.UUID,
	origin, destination string,
	startTime, estimatedDeliveryTime, actualDeliveryTime time.Time,
	status Status,
	producerConfirmed bool,
	checkpoints []*Checkpoint,
) (*TransportRecord, error) {
	t, err := NewTransportRecord(id, auctionID, productID, carrier, producer,
		origin, destination, estimatedDeliveryTime, startTime)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, cp := range checkpoints {
		if err = cp.Validate(); err != nil {
			return nil, err
		}
	}

	t.actualDeliveryTime = actualDeliveryTime
	t.status = status
	t.producerConfirmed = producerConfirmed
	t.checkpoints = checkpoints
	t.checkpointCount = len(checkpoints)
	return t, nil
}

// Validate ensures the record was created via a constructor.
func (t *TransportRecord) Validate() error {
	if t == nil {
		return ErrTransportIsNotConstructed
	}
	return t.guard.Validate(ErrTransportIsNotConstructed)
}

// ID returns the record's sequential identifier.
func (t *TransportRecord) ID() kernel.EntityID {
	return t.id
}

// AuctionID returns the originating auction.
func (t *TransportRecord) AuctionID() kernel.EntityID {
	return t.auctionID
}

// ProductID returns the product being moved.
func (t *TransportRecord) ProductID() kernel.EntityID {
	return t.productID
}

// Carrier returns the winning carrier operating the transport.
func (t *TransportRecord) Carrier() kernel.UUID {
	return t.carrier
}

// Producer returns the producer awaiting the delivery.
func (t *TransportRecord) Producer() kernel.UUID {
	return t.producer
}

// Origin returns the pickup descriptor, copied from the auction.
func (t *TransportRecord) Origin() string {
	return t.origin
}

// Destination returns the delivery descriptor, copied from the auction.
func (t *TransportRecord) Destination() string {
	return t.destination
}

// StartTime returns when the transport was opened.
func (t *TransportRecord) StartTime() time.Time {
	return t.startTime
}

// EstimatedDeliveryTime returns the carrier's delivery estimate.
func (t *TransportRecord) EstimatedDeliveryTime() time.Time {
	return t.estimatedDeliveryTime
}

// ActualDeliveryTime returns the delivery timestamp; zero until delivered.
func (t *TransportRecord) ActualDeliveryTime() time.Time {
	return t.actualDeliveryTime
}

// Status returns the record's lifecycle status.
func (t *TransportRecord) Status() Status {
	return t.status
}

// CheckpointCount returns the number of ledger entries.
func (t *TransportRecord) CheckpointCount() int {
	return t.checkpointCount
}

// ProducerConfirmed reports whether the producer confirmed the delivery.
func (t *TransportRecord) ProducerConfirmed() bool {
	return t.producerConfirmed
}

// Checkpoints returns the append-only ledger in sequence order.
func (t *TransportRecord) Checkpoints() []*Checkpoint {
	return t.checkpoints
}

// IsCarrier reports whether the principal is the operating carrier.
func (t *TransportRecord) IsCarrier(principal kernel.UUID) bool {
	return t.carrier.IsEqual(principal)
}

// IsProducer reports whether the principal is the awaiting producer.
func (t *TransportRecord) IsProducer(principal kernel.UUID) bool {
	return t.producer.IsEqual(principal)
}

// AddCheckpoint appends a carrier-initiated progress entry. The record must
// still be moving (InTransit or Delayed).
func (t *TransportRecord) AddCheckpoint(location, notes string, recordedBy kernel.UUID, now time.Time) error {
	if location == "" {
		return ErrLocationIsRequired
	}
	if !t.status.CanProgress() {
		return ErrTransportNotProgressing
	}

	return t.appendCheckpoint(location, notes, recordedBy, now)
}

// ChangeStatus transitions the record and emits an automatic "Status Update"
// checkpoint recording the transition. This is the only programmatic writer
// of the ledger. A transition to Delivered stamps the actual delivery time;
// the handler restricts that transition to the carrier.
func (t *TransportRecord) ChangeStatus(newStatus Status, notes string, by kernel.UUID, now time.Time) error {
	next, err := t.status.ChangeTo(newStatus)
	if err != nil {
		return err
	}

	note := fmt.Sprintf("%s -> %s", t.status.String(), next.String())
	if notes != "" {
		note = note + ": " + notes
	}
	if err = t.appendCheckpoint(statusUpdateLocation, note, by, now); err != nil {
		return err
	}

	t.status = next
	if next == Delivered {
		t.actualDeliveryTime = now
	}
	return nil
}

// CompleteDelivery closes the moving record at its final location: status
// becomes Delivered, the actual delivery time is stamped and a closing
// checkpoint is appended.
func (t *TransportRecord) CompleteDelivery(finalLocation string, by kernel.UUID, now time.Time) error {
	if finalLocation == "" {
		return ErrLocationIsRequired
	}
	if !t.status.CanProgress() {
		return ErrTransportNotProgressing
	}

	if err := t.appendCheckpoint(finalLocation, "Delivery completed", by, now); err != nil {
		return err
	}

	t.status = Delivered
	t.actualDeliveryTime = now
	return nil
}

// ConfirmDelivery records the producer's acceptance of a delivered
// transport. Confirming twice is a state conflict.
func (t *TransportRecord) ConfirmDelivery() error {
	if t.status != Delivered {
		return ErrTransportNotDelivered
	}
	if t.producerConfirmed {
		return ErrDeliveryAlreadyConfirmed
	}

	t.producerConfirmed = true
	return nil
}

// RaiseDispute escalates a moving transport to Disputed and appends a
// "Dispute" checkpoint carrying the reason. Disputes have no automatic
// exit; resolution is external.
func (t *TransportRecord) RaiseDispute(reason string, by kernel.UUID, now time.Time) error {
	if !t.status.CanProgress() {
		return ErrTransportNotProgressing
	}

	if err := t.appendCheckpoint(disputeLocation, reason, by, now); err != nil {
		return err
	}

	t.status = Disputed
	return nil
}

// IsDelayed is the soft SLA predicate: true when flagged Delayed, false once
// Delivered, otherwise true iff the estimate has passed.
func (t *TransportRecord) IsDelayed(now time.Time) bool {
	switch t.status {
	case Delayed:
		return true
	case Delivered:
		return false
	default:
		return now.After(t.estimatedDeliveryTime)
	}
}

func (t *TransportRecord) appendCheckpoint(location, notes string, recordedBy kernel.UUID, now time.Time) error {
	cp, err := newCheckpoint(t.checkpointCount+1, location, notes, recordedBy, now)
	if err != nil {
		return err
	}

	t.checkpoints = append(t.checkpoints, cp)
	t.checkpointCount++
	return nil
}

func (t *TransportRecord) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *TransportRecord) setAuctionID(auctionID kernel.EntityID) error {
	if err := auctionID.Validate(); err != nil {
		return err
	}
	t.auctionID = auctionID
	return nil
}

func (t *TransportRecord) setProductID(productID kernel.EntityID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	t.productID = productID
	return nil
}

func (t *TransportRecord) setCarrier(carrier kernel.UUID) error {
	if err := carrier.Validate(); err != nil {
		return err
	}
	t.carrier = carrier
	return nil
}

func (t *TransportRecord) setProducer(producer kernel.UUID) error {
	if err := producer.Validate(); err != nil {
		return err
	}
	t.producer = producer
	return nil
}

func (t *TransportRecord) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	t.origin = origin
	return nil
}

func (t *TransportRecord) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	t.destination = destination
	return nil
}

func (t *TransportRecord) setEstimatedDeliveryTime(estimate, now time.Time) error {
	if !estimate.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("estimated delivery time",
			fmt.Errorf("%s is not after the transport start", estimate))
	}
	t.estimatedDeliveryTime = estimate
	return nil
}
