package kernel

import (
	"fmt"
	"strconv"

	"freightbid/internal/pkg/errs"
)

// Money is a non-negative integer amount in the marketplace's smallest
// currency unit. Amounts on auctions and bids are fixed once accepted and
// are never altered retroactively, so Money is immutable by construction.
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Negative amounts are rejected; zero is a
// legal, explicit amount (a free listing has price 0).
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// IsLessThan reports whether m is strictly lower than other. Reverse-auction
// bid acceptance uses strict comparison, so ties are impossible.
func (m Money) IsLessThan(other Money) bool {
	return m.amount < other.amount
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the decimal form of the amount.
func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}
