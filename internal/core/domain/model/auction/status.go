package auction

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Status represents the lifecycle state of an auction.
//
// State transitions:
//
//	Active ──┬──> Completed
//	         └──> Cancelled
//
// Completed and Cancelled are terminal; no transition leaves them. The
// auction record itself is retained forever with its terminal status.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// ActiveStatus is the initial status: the auction accepts bids until its deadline.
	ActiveStatus

	// CompletedStatus is terminal: the auction was resolved, with or without a winner.
	CompletedStatus

	// CancelledStatus is terminal: the producer withdrew the auction before resolution.
	CancelledStatus
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:   "Unknown",
		ActiveStatus:    "Active",
		CompletedStatus: "Completed",
		CancelledStatus: "Cancelled",
	}
}

// Validate checks that the Status is one of Active, Completed or Cancelled.
func (s Status) Validate() error {
	if s != ActiveStatus && s != CompletedStatus && s != CancelledStatus {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid auction status", s))
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

// Complete transitions the status to Completed. Only an Active auction can
// be completed; resolving an already-resolved auction is a state conflict.
func (s Status) Complete() (Status, error) {
	if s != ActiveStatus {
		return 0, errs.NewStateConflictErrorWithCause("auction is not active",
			fmt.Errorf("%s cannot transition to Completed", s.String()))
	}
	return CompletedStatus, nil
}

// Cancel transitions the status to Cancelled. Only an Active auction can be
// cancelled.
func (s Status) Cancel() (Status, error) {
	if s != ActiveStatus {
		return 0, errs.NewStateConflictErrorWithCause("auction is not active",
			fmt.Errorf("%s cannot transition to Cancelled", s.String()))
	}
	return CancelledStatus, nil
}
