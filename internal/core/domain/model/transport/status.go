package transport

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport record.
//
// State transitions:
//
//	InTransit ──┬──> Delivered
//	            ├──> Delayed ──┬──> Delivered
//	            │              └──> Disputed
//	            └──> Disputed
//
// NotStarted is the implicit pre-creation state; records are created
// directly InTransit. Disputed has no automatic exit: resolution happens
// outside the core. Delivered is closed by producer confirmation.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// NotStarted is the implicit state before the winning carrier opens the transport.
	NotStarted

	// InTransit is the initial status of a created transport record.
	InTransit

	// Delivered means the carrier completed the delivery; awaits producer confirmation.
	Delivered

	// Delayed flags a transport running behind its estimate; checkpoints continue.
	Delayed

	// Disputed freezes the transport pending external resolution.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		NotStarted:    "NotStarted",
		InTransit:     "InTransit",
		Delivered:     "Delivered",
		Delayed:       "Delayed",
		Disputed:      "Disputed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		NotStarted: "NotStarted",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
		Delayed:    "Delayed",
		Disputed:   "Disputed",
	}
}

// StatusFromString parses a status name as received on the wire.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid transport status", s))
}

// Validate checks that the Status is a defined transport status.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanProgress reports whether the transport still accepts checkpoints and
// status changes, which is the case while it is moving (InTransit or Delayed).
func (s Status) CanProgress() bool {
	return s == InTransit || s == Delayed
}

// ChangeTo validates the transition to newStatus and returns it.
func (s Status) ChangeTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return 0, err
	}

	allowed := map[Status][]Status{
		InTransit: {Delivered, Delayed, Disputed},
		Delayed:   {Delivered, Disputed},
	}

	for _, next := range allowed[s] {
		if next == newStatus {
			return newStatus, nil
		}
	}

	return 0, errs.NewStateConflictErrorWithCause("transport status transition is not allowed",
		fmt.Errorf("%s cannot transition to %s", s.String(), newStatus.String()))
}
