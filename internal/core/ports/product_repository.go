package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// NextID reserves the next sequential product identifier. Identifiers
	// are never reused; the reservation happens inside the surrounding
	// transaction so concurrent callers are serialized.
	NextID(ctx context.Context) (kernel.EntityID, error)

	// Add persists a new product aggregate.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.EntityID) (*product.Product, error)
}
