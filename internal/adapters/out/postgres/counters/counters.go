// Package counters implements sequential identifier reservation. Each
// aggregate kind owns a named counter row; reserving the next value
// increments the row inside the caller's transaction, so identifiers are
// strictly sequential and never reused even across deletions or rollbacks of
// later state.
package counters

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// Counter names, one per aggregate kind with sequential identifiers.
const (
	ProductCounter   = "products"
	AuctionCounter   = "auctions"
	TransportCounter = "transports"
)

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "counters".
func (CounterDTO) TableName() string {
	return "counters"
}

// Next reserves the next value of the named counter. The row-level lock
// taken by the update serializes concurrent reservations; the reserved value
// is burned if the surrounding transaction commits and released if it rolls
// back, which keeps the sequence gap-free under the one-writer model.
func Next(ctx context.Context, db *gorm.DB, name string) (kernel.EntityID, error) {
	var value int64
	err := db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return kernel.NoEntityID(), err
	}

	return kernel.NewEntityID(value)
}
