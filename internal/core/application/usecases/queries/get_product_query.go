package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/pkg/guard"
)

// ErrGetProductQueryIsNotConstructed is returned when the query was not
// created through the constructor.
var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one product listing.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for a single product.
func NewGetProductQuery(productID kernel.EntityID) (GetProductQuery, error) {
	q := GetProductQuery{guard: guard.NewConstructorGuard()}
	if err := q.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested product.
func (q GetProductQuery) ProductID() kernel.EntityID {
	return q.productID
}

func (q *GetProductQuery) setProductID(productID kernel.EntityID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	q.productID = productID
	return nil
}

// GetProductQueryResponse is the read model for one product listing. A zero
// LinkedAuctionID means the product currently backs no auction.
type GetProductQueryResponse struct {
	ID              kernel.EntityID
	Producer        kernel.UUID
	Name            string
	Quantity        string
	Details         string
	UnitPrice       kernel.Money
	Status          product.Status
	CreatedAt       time.Time
	LastUpdated     time.Time
	LinkedAuctionID kernel.EntityID
}
