// Package transportrepo provides data transfer objects and mapping functions
// for transport record persistence. The transport row and its checkpoint
// trail are written together; trail rows are append-only and keyed by the
// transport id and the checkpoint's trail sequence.
package transportrepo

import (
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/transport"

	"github.com/google/uuid"
)

// TransportDTO represents the database structure for persisting transport
// records. ActualDeliveryTime stays at the zero time until delivery.
type TransportDTO struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement:false"`
	AuctionID             int64     `gorm:"not null;index"`
	ProductID             int64     `gorm:"not null;index"`
	CarrierID             uuid.UUID `gorm:"type:uuid;index;not null"`
	ProducerID            uuid.UUID `gorm:"type:uuid;index;not null"`
	Origin                string    `gorm:"type:varchar(255);not null"`
	Destination           string    `gorm:"type:varchar(255);not null"`
	StartTime             time.Time
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    time.Time
	Status                int  `gorm:"not null;index"`
	ProducerConfirmed     bool `gorm:"not null"`
	Checkpoints           []CheckpointDTO `gorm:"foreignKey:TransportID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "transports".
func (TransportDTO) TableName() string {
	return "transports"
}

// CheckpointDTO represents one checkpoint trail entry. Rows are never
// deleted or reordered.
type CheckpointDTO struct {
	TransportID int64  `gorm:"primaryKey;autoIncrement:false"`
	Seq         int    `gorm:"primaryKey;autoIncrement:false"`
	Location    string `gorm:"type:varchar(255);not null"`
	Timestamp   time.Time
	Notes       string    `gorm:"type:text"`
	RecordedBy  uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName overrides GORM's default naming convention to use "checkpoints".
func (CheckpointDTO) TableName() string {
	return "checkpoints"
}

// fromDomain converts a transport record, checkpoint trail included, to its
// database representation.
func fromDomain(t *transport.TransportRecord) TransportDTO {
	checkpoints := make([]CheckpointDTO, 0, len(t.Checkpoints()))
	for _, cp := range t.Checkpoints() {
		checkpoints = append(checkpoints, CheckpointDTO{
			TransportID: t.ID().Value(),
			Seq:         cp.Seq(),
			Location:    cp.Location(),
			Timestamp:   cp.Timestamp(),
			Notes:       cp.Notes(),
			RecordedBy:  cp.RecordedBy().Bytes(),
		})
	}

	return TransportDTO{
		ID:                    t.ID().Value(),
		AuctionID:             t.AuctionID().Value(),
		ProductID:             t.ProductID().Value(),
		CarrierID:             t.Carrier().Bytes(),
		ProducerID:            t.Producer().Bytes(),
		Origin:                t.Origin(),
		Destination:           t.Destination(),
		StartTime:             t.StartTime(),
		EstimatedDeliveryTime: t.EstimatedDeliveryTime(),
		ActualDeliveryTime:    t.ActualDeliveryTime(),
		Status:                int(t.Status()),
		ProducerConfirmed:     t.ProducerConfirmed(),
		Checkpoints:           checkpoints,
	}
}

// toDomain converts a database row with its trail to a transport record via
// RestoreTransportRecord.
func toDomain(dto TransportDTO) (*transport.TransportRecord, error) {
	id, err := kernel.NewEntityID(dto.ID)
	if err != nil {
		return nil, err
	}

	auctionID, err := kernel.NewEntityID(dto.AuctionID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.NewEntityID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	carrier, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	producer, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	checkpoints := make([]*transport.Checkpoint, 0, len(dto.Checkpoints))
	for _, cp := range dto.Checkpoints {
		checkpoint, cpErr := checkpointToDomain(cp)
		if cpErr != nil {
			return nil, cpErr
		}
		checkpoints = append(checkpoints, checkpoint)
	}

	return transport.RestoreTransportRecord(
		id, auctionID, productID,
		carrier, producer,
		dto.Origin, dto.Destination,
		dto.StartTime, dto.EstimatedDeliveryTime, dto.ActualDeliveryTime,
		transport.Status(dto.Status),
		dto.ProducerConfirmed,
		checkpoints,
	)
}

// checkpointToDomain converts a checkpoint row to a trail entry.
func checkpointToDomain(dto CheckpointDTO) (*transport.Checkpoint, error) {
	recordedBy, err := kernel.UUIDFromBytes(dto.RecordedBy[:])
	if err != nil {
		return nil, err
	}

	return transport.RestoreCheckpoint(dto.Seq, dto.Location, dto.Notes, recordedBy, dto.Timestamp)
}
