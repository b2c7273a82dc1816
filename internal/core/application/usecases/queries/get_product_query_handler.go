package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves one product listing from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product reads.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	var resp GetProductQueryResponse
	var id, unitPrice, linkedAuctionID int64
	var producerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			producer_id,
			name,
			quantity,
			details,
			unit_price,
			status,
			created_at,
			last_updated,
			linked_auction_id
		FROM products
		WHERE id = ?
	`, query.ProductID().Value()).Row()

	err := row.Scan(
		&id,
		&producerID,
		&resp.Name,
		&resp.Quantity,
		&resp.Details,
		&unitPrice,
		&status,
		&resp.CreatedAt,
		&resp.LastUpdated,
		&linkedAuctionID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
	}
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	if resp.ID, err = kernel.NewEntityID(id); err != nil {
		return GetProductQueryResponse{}, err
	}
	if resp.Producer, err = kernel.UUIDFromBytes(producerID[:]); err != nil {
		return GetProductQueryResponse{}, err
	}
	if resp.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
		return GetProductQueryResponse{}, err
	}
	if linkedAuctionID != 0 {
		if resp.LinkedAuctionID, err = kernel.NewEntityID(linkedAuctionID); err != nil {
			return GetProductQueryResponse{}, err
		}
	}
	resp.Status = product.Status(status)

	return resp, nil
}
