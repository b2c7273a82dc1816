package queries

import (
	"context"

	"freightbid/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GetProductsWithoutAuctionsQueryHandler lists active products with no
// auction link.
type GetProductsWithoutAuctionsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsWithoutAuctionsQueryHandler creates a handler for
// auctionable-product listings.
func NewGetProductsWithoutAuctionsQueryHandler(db *gorm.DB) GetProductsWithoutAuctionsQueryHandler {
	return GetProductsWithoutAuctionsQueryHandler{db: db}
}

// Handle executes the query and returns the requested page. Only Active
// products qualify: inactive and recalled listings cannot open auctions
// anyway.
func (h GetProductsWithoutAuctionsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsWithoutAuctionsQuery,
) ([]GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		productListSQL+`
		WHERE linked_auction_id = 0 AND status = ?
		ORDER BY id
		OFFSET ? LIMIT ?
	`, int(product.Active), query.Offset(), query.Count()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProductRows(rows)
}
