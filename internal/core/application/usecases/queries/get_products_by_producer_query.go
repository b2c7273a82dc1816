package queries

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

// ErrGetProductsByProducerQueryIsNotConstructed is returned when the query
// was not created through the constructor.
var ErrGetProductsByProducerQueryIsNotConstructed = errors.New(
	"GetProductsByProducerQuery must be created via NewGetProductsByProducerQuery constructor",
)

// GetProductsByProducerQuery retrieves a page of one producer's listings.
type GetProductsByProducerQuery struct { //nolint:recvcheck //using for validation
	producer kernel.UUID
	offset   int
	count    int

	guard guard.ConstructorGuard
}

// NewGetProductsByProducerQuery creates a paged query over a producer's
// products.
func NewGetProductsByProducerQuery(
	producer kernel.UUID, offset, count int,
) (GetProductsByProducerQuery, error) {
	q := GetProductsByProducerQuery{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		q.setProducer(producer),
		q.setPage(offset, count),
	); err != nil {
		return GetProductsByProducerQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsByProducerQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsByProducerQueryIsNotConstructed)
}

// Producer returns the producer whose listings are requested.
func (q GetProductsByProducerQuery) Producer() kernel.UUID {
	return q.producer
}

// Offset returns the number of rows to skip.
func (q GetProductsByProducerQuery) Offset() int {
	return q.offset
}

// Count returns the page size.
func (q GetProductsByProducerQuery) Count() int {
	return q.count
}

func (q *GetProductsByProducerQuery) setProducer(producer kernel.UUID) error {
	if err := producer.Validate(); err != nil {
		return err
	}
	q.producer = producer
	return nil
}

func (q *GetProductsByProducerQuery) setPage(offset, count int) error {
	if err := validatePage(offset, count); err != nil {
		return err
	}
	q.offset = offset
	q.count = count
	return nil
}
