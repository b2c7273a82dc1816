package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductsByProducerQueryHandler lists one producer's products, newest
// first.
type GetProductsByProducerQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsByProducerQueryHandler creates a handler for per-producer
// product listings.
func NewGetProductsByProducerQueryHandler(db *gorm.DB) GetProductsByProducerQueryHandler {
	return GetProductsByProducerQueryHandler{db: db}
}

// Handle executes the query and returns the requested page. The per-row read
// model is shared with GetProductQuery.
func (h GetProductsByProducerQueryHandler) Handle(
	ctx context.Context,
	query GetProductsByProducerQuery,
) ([]GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		productListSQL+`
		WHERE producer_id = ?
		ORDER BY id DESC
		OFFSET ? LIMIT ?
	`, query.Producer().Bytes(), query.Offset(), query.Count()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProductRows(rows)
}
