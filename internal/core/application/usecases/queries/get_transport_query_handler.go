package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransportQueryHandler retrieves one transport record with its complete
// checkpoint trail.
type GetTransportQueryHandler struct {
	db *gorm.DB
}

// NewGetTransportQueryHandler creates a handler for single-transport reads.
func NewGetTransportQueryHandler(db *gorm.DB) GetTransportQueryHandler {
	return GetTransportQueryHandler{db: db}
}

// Handle executes the query. Checkpoints come back ordered by their trail
// sequence.
func (h GetTransportQueryHandler) Handle(
	ctx context.Context,
	query GetTransportQuery,
) (GetTransportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTransportQueryResponse{}, err
	}

	resp, err := h.readTransport(ctx, query.TransportID())
	if err != nil {
		return GetTransportQueryResponse{}, err
	}

	resp.Checkpoints, err = h.readCheckpoints(ctx, query.TransportID())
	if err != nil {
		return GetTransportQueryResponse{}, err
	}

	return resp, nil
}

func (h GetTransportQueryHandler) readTransport(
	ctx context.Context, transportID kernel.EntityID,
) (GetTransportQueryResponse, error) {
	var resp GetTransportQueryResponse
	var id, auctionID, productID int64
	var carrierID, producerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			auction_id,
			product_id,
			carrier_id,
			producer_id,
			origin,
			destination,
			start_time,
			estimated_delivery_time,
			actual_delivery_time,
			status,
			producer_confirmed
		FROM transports
		WHERE id = ?
	`, transportID.Value()).Row()

	err := row.Scan(
		&id,
		&auctionID,
		&productID,
		&carrierID,
		&producerID,
		&resp.Origin,
		&resp.Destination,
		&resp.StartTime,
		&resp.EstimatedDeliveryTime,
		&resp.ActualDeliveryTime,
		&status,
		&resp.ProducerConfirmed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetTransportQueryResponse{}, errs.NewObjectNotFoundError("transportID", transportID)
	}
	if err != nil {
		return GetTransportQueryResponse{}, err
	}

	if resp.ID, err = kernel.NewEntityID(id); err != nil {
		return GetTransportQueryResponse{}, err
	}
	if resp.AuctionID, err = kernel.NewEntityID(auctionID); err != nil {
		return GetTransportQueryResponse{}, err
	}
	if resp.ProductID, err = kernel.NewEntityID(productID); err != nil {
		return GetTransportQueryResponse{}, err
	}
	if resp.Carrier, err = kernel.UUIDFromBytes(carrierID[:]); err != nil {
		return GetTransportQueryResponse{}, err
	}
	if resp.Producer, err = kernel.UUIDFromBytes(producerID[:]); err != nil {
		return GetTransportQueryResponse{}, err
	}
	resp.Status = transport.Status(status)

	return resp, nil
}

func (h GetTransportQueryHandler) readCheckpoints(
	ctx context.Context, transportID kernel.EntityID,
) ([]GetTransportQueryCheckpointResponse, error) {
	checkpoints := make([]GetTransportQueryCheckpointResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			location,
			timestamp,
			notes,
			recorded_by
		FROM checkpoints
		WHERE transport_id = ?
		ORDER BY seq
	`, transportID.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cp GetTransportQueryCheckpointResponse
		var recordedBy uuid.UUID

		err = rows.Scan(
			&cp.Seq,
			&cp.Location,
			&cp.Timestamp,
			&cp.Notes,
			&recordedBy,
		)
		if err != nil {
			return nil, err
		}

		if cp.RecordedBy, err = kernel.UUIDFromBytes(recordedBy[:]); err != nil {
			return nil, err
		}

		checkpoints = append(checkpoints, cp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return checkpoints, nil
}
