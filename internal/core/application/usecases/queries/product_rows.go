package queries

import (
	"database/sql"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// productListSQL selects the columns of the shared product read model. The
// caller appends its WHERE clause and pagination.
const productListSQL = `
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
		FROM products`

// scanProductRows converts product rows into the shared read model.
func scanProductRows(rows *sql.Rows) ([]GetProductQueryResponse, error) {
	products := make([]GetProductQueryResponse, 0)

	for rows.Next() {
		var resp GetProductQueryResponse
		var id, unitPrice, linkedAuctionID int64
		var producerID uuid.UUID
		var status int

		err := rows.Scan(
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
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewEntityID(id); err != nil {
			return nil, err
		}
		if resp.Producer, err = kernel.UUIDFromBytes(producerID[:]); err != nil {
			return nil, err
		}
		if resp.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if linkedAuctionID != 0 {
			if resp.LinkedAuctionID, err = kernel.NewEntityID(linkedAuctionID); err != nil {
				return nil, err
			}
		}
		resp.Status = product.Status(status)

		products = append(products, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
