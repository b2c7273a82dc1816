package product

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Status represents the listing state of a product. Unlike auction and
// transport statuses there is no restricted transition graph: any status may
// be set from any other, because a recall must be reachable from every state.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Active products may be auctioned and bid on.
	Active

	// Inactive products are retired listings; bidding on their auctions freezes.
	Inactive

	// Recalled products are withdrawn by their producer; bidding freezes.
	Recalled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Active:        "Active",
		Inactive:      "Inactive",
		Recalled:      "Recalled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "Active",
		Inactive: "Inactive",
		Recalled: "Recalled",
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
		fmt.Errorf("%q is not a valid product status", s))
}

// Validate checks that the Status is one of Active, Inactive or Recalled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid product status", s))
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
