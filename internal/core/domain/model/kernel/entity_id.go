package kernel

import (
	"fmt"
	"strconv"

	"freightbid/internal/pkg/errs"
)

// EntityID identifies a Product, Auction or TransportRecord. Identifiers are
// positive integers assigned from a per-entity monotonic counter and are
// never reused, even when the entity is logically retired.
//
// The zero value means "no entity": a product without a linked auction
// carries EntityID{} as its link.
type EntityID struct {
	value int64
}

// NewEntityID creates an EntityID from a counter value. The value must be
// positive; zero is reserved for "no entity".
func NewEntityID(value int64) (EntityID, error) {
	if value <= 0 {
		return EntityID{}, errs.NewValueIsInvalidErrorWithCause("entity id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return EntityID{value: value}, nil
}

// NoEntityID returns the zero identifier meaning "no entity".
func NoEntityID() EntityID {
	return EntityID{}
}

// EntityIDFromString parses a decimal identifier, as received on the wire.
func EntityIDFromString(s string) (EntityID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return EntityID{}, errs.NewValueIsInvalidErrorWithCause("entity id", err)
	}
	return NewEntityID(v)
}

// Value returns the numeric identifier; zero for "no entity".
func (id EntityID) Value() int64 {
	return id.value
}

// IsZero reports whether the identifier means "no entity".
func (id EntityID) IsZero() bool {
	return id.value == 0
}

// IsEqual reports whether two identifiers reference the same entity.
func (id EntityID) IsEqual(other EntityID) bool {
	return id.value == other.value
}

// String returns the decimal form of the identifier.
func (id EntityID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// Validate returns an error for the zero identifier. Callers that allow
// "no entity" should check IsZero instead.
func (id EntityID) Validate() error {
	if id.value <= 0 {
		return errs.NewValueIsRequiredError("entity id")
	}
	return nil
}
