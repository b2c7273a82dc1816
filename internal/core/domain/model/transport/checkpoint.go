package transport

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrCheckpointIsNotConstructed is returned when using an improperly initialized Checkpoint.
var ErrCheckpointIsNotConstructed = errors.New("Checkpoint must be created via newCheckpoint or RestoreCheckpoint")

// Checkpoint is an immutable entry in a transport's append-only progress
// ledger. Sequence numbers are scoped to the owning record, start at 1 and
// are gapless: automatic entries from status changes use the same sequence
// as carrier-initiated ones.
type Checkpoint struct {
	seq        int
	location   string
	timestamp  time.Time
	notes      string
	recordedBy kernel.UUID

	guard guard.ConstructorGuard
}

// newCheckpoint appends-constructs a checkpoint. Only the owning transport
// record creates checkpoints; seq is its 1-based position in the ledger.
func newCheckpoint(seq int, location, notes string, recordedBy kernel.UUID, now time.Time) (*Checkpoint, error) {
	if err := recordedBy.Validate(); err != nil {
		return nil, err
	}

	return &Checkpoint{
		seq:        seq,
		location:   location,
		timestamp:  now,
		notes:      notes,
		recordedBy: recordedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCheckpoint reconstructs a checkpoint ledger entry from persistence.
func RestoreCheckpoint(seq int, location, notes string, recordedBy kernel.UUID, timestamp time.Time) (*Checkpoint, error) {
	return newCheckpoint(seq, location, notes, recordedBy, timestamp)
}

// Validate ensures the checkpoint was created via a constructor.
func (c *Checkpoint) Validate() error {
	if c == nil {
		return ErrCheckpointIsNotConstructed
	}
	return c.guard.Validate(ErrCheckpointIsNotConstructed)
}

// Seq returns the checkpoint's 1-based position in the ledger.
func (c *Checkpoint) Seq() int {
	return c.seq
}

// Location returns the reported location text.
func (c *Checkpoint) Location() string {
	return c.location
}

// Timestamp returns the time the checkpoint was recorded.
func (c *Checkpoint) Timestamp() time.Time {
	return c.timestamp
}

// Notes returns the free-text notes.
func (c *Checkpoint) Notes() string {
	return c.notes
}

// RecordedBy returns the principal that recorded the checkpoint.
func (c *Checkpoint) RecordedBy() kernel.UUID {
	return c.recordedBy
}
