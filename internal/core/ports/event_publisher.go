package ports

import (
	"context"
	"time"
)

// Event names emitted on successful mutations. They are the only externally
// observable side channel besides state itself; downstream consumers (UI,
// notification, analytics) subscribe outside the core.
const (
	EventProductRegistered    = "ProductRegistered"
	EventProductUpdated       = "ProductUpdated"
	EventProductStatusChanged = "ProductStatusChanged"
	EventAuctionCreated       = "AuctionCreated"
	EventBidPlaced            = "BidPlaced"
	EventBidUpdated           = "BidUpdated"
	EventBidCancelled         = "BidCancelled"
	EventAuctionCompleted     = "AuctionCompleted"
	EventAuctionCancelled     = "AuctionCancelled"
	EventRoleGranted          = "RoleGranted"
	EventRoleRevoked          = "RoleRevoked"
	EventTransportEvent       = "TransportEvent"
	EventCheckpointAdded      = "CheckpointAdded"
)

// Event is a notification about one committed mutation. EntityID identifies
// the primary aggregate, RelatedID an optional linked one (the product of an
// auction event, the auction of a transport event). Kind qualifies
// TransportEvent notifications (created, status-changed, delivered,
// confirmed, disputed).
type Event struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind,omitempty"`
	EntityID  int64     `json:"entityId,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	RelatedID int64     `json:"relatedId,omitempty"`
	Actor     string    `json:"actor"`
	At        time.Time `json:"at"`
}

// EventPublisher delivers events to downstream consumers. Handlers publish
// after a successful commit; delivery failures are logged, never rolled
// back into the committed mutation.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
