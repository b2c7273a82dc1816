package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/pkg/guard"
)

// ErrGetTransportQueryIsNotConstructed is returned when the query was not
// created through the constructor.
var ErrGetTransportQueryIsNotConstructed = errors.New(
	"GetTransportQuery must be created via NewGetTransportQuery constructor",
)

// GetTransportQuery retrieves one transport record together with its full
// checkpoint trail.
type GetTransportQuery struct { //nolint:recvcheck //using for validation
	transportID kernel.EntityID

	guard guard.ConstructorGuard
}

// NewGetTransportQuery creates a query for a single transport record.
func NewGetTransportQuery(transportID kernel.EntityID) (GetTransportQuery, error) {
	q := GetTransportQuery{guard: guard.NewConstructorGuard()}
	if err := q.setTransportID(transportID); err != nil {
		return GetTransportQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransportQuery) Validate() error {
	return q.guard.Validate(ErrGetTransportQueryIsNotConstructed)
}

// TransportID returns the requested transport record.
func (q GetTransportQuery) TransportID() kernel.EntityID {
	return q.transportID
}

func (q *GetTransportQuery) setTransportID(transportID kernel.EntityID) error {
	if err := transportID.Validate(); err != nil {
		return err
	}
	q.transportID = transportID
	return nil
}

// GetTransportQueryResponse is the full read model for one transport record.
// ActualDeliveryTime is the zero time until the delivery completes.
type GetTransportQueryResponse struct {
	ID                    kernel.EntityID
	AuctionID             kernel.EntityID
	ProductID             kernel.EntityID
	Carrier               kernel.UUID
	Producer              kernel.UUID
	Origin                string
	Destination           string
	StartTime             time.Time
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    time.Time
	Status                transport.Status
	ProducerConfirmed     bool
	Checkpoints           []GetTransportQueryCheckpointResponse
}

// GetTransportQueryCheckpointResponse is the read model for one checkpoint,
// automatic transition checkpoints included.
type GetTransportQueryCheckpointResponse struct {
	Seq        int
	Location   string
	Timestamp  time.Time
	Notes      string
	RecordedBy kernel.UUID
}
