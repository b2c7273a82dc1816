package principal

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Role is a capability a principal can hold. Every mutating operation of the
// marketplace is gated on one or more roles.
//
// Producer registers products and opens auctions for them. Carrier bids on
// auctions and operates the resulting transports. Admin grants and revokes
// roles and may act in place of an owning producer.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Producer may register products and open auctions for goods it owns.
	Producer

	// Carrier may bid on auctions and operate the resulting transport.
	Carrier

	// Admin administers role membership and may override producer ownership checks.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Producer:    "Producer",
		Carrier:     "Carrier",
		Admin:       "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Producer: "Producer",
		Carrier:  "Carrier",
		Admin:    "Admin",
	}
}

// RoleFromString parses a role name as received on the wire.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of Producer, Carrier or Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
