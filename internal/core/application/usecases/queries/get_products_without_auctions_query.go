package queries

import (
	"errors"

	"freightbid/internal/pkg/guard"
)

// ErrGetProductsWithoutAuctionsQueryIsNotConstructed is returned when the
// query was not created through the constructor.
var ErrGetProductsWithoutAuctionsQueryIsNotConstructed = errors.New(
	"GetProductsWithoutAuctionsQuery must be created via NewGetProductsWithoutAuctionsQuery constructor",
)

// GetProductsWithoutAuctionsQuery retrieves a page of active products not
// currently backing an auction. Producers use it to find listings still
// waiting for transport.
type GetProductsWithoutAuctionsQuery struct { //nolint:recvcheck //using for validation
	offset int
	count  int

	guard guard.ConstructorGuard
}

// NewGetProductsWithoutAuctionsQuery creates a paged query over auctionable
// products.
func NewGetProductsWithoutAuctionsQuery(offset, count int) (GetProductsWithoutAuctionsQuery, error) {
	q := GetProductsWithoutAuctionsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setPage(offset, count); err != nil {
		return GetProductsWithoutAuctionsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsWithoutAuctionsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsWithoutAuctionsQueryIsNotConstructed)
}

// Offset returns the number of rows to skip.
func (q GetProductsWithoutAuctionsQuery) Offset() int {
	return q.offset
}

// Count returns the page size.
func (q GetProductsWithoutAuctionsQuery) Count() int {
	return q.count
}

func (q *GetProductsWithoutAuctionsQuery) setPage(offset, count int) error {
	if err := validatePage(offset, count); err != nil {
		return err
	}
	q.offset = offset
	q.count = count
	return nil
}
