// Package productrepo provides data transfer objects and mapping functions
// for product persistence. It implements the repository pattern for the
// product aggregate, converting between domain entities and database rows.
package productrepo

import (
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. A zero LinkedAuctionID means the product backs no auction.
type ProductDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement:false"`
	ProducerID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Quantity        string    `gorm:"type:varchar(255);not null"`
	Details         string    `gorm:"type:text;not null"`
	UnitPrice       int64     `gorm:"not null"`
	Status          int       `gorm:"not null;index"`
	CreatedAt       time.Time
	LastUpdated     time.Time
	LinkedAuctionID int64 `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID().Value(),
		ProducerID:      p.Producer().Bytes(),
		Name:            p.Name(),
		Quantity:        p.Quantity(),
		Details:         p.Details(),
		UnitPrice:       p.UnitPrice().Amount(),
		Status:          int(p.Status()),
		CreatedAt:       p.CreatedAt(),
		LastUpdated:     p.LastUpdated(),
		LinkedAuctionID: p.LinkedAuctionID().Value(),
	}
}

// toDomain converts a database row to a product aggregate via RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewEntityID(dto.ID)
	if err != nil {
		return nil, err
	}

	producer, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	linkedAuctionID := kernel.NoEntityID()
	if dto.LinkedAuctionID != 0 {
		if linkedAuctionID, err = kernel.NewEntityID(dto.LinkedAuctionID); err != nil {
			return nil, err
		}
	}

	return product.RestoreProduct(
		id, producer,
		dto.Name, dto.Quantity, dto.Details,
		unitPrice,
		product.Status(dto.Status),
		dto.CreatedAt, dto.LastUpdated,
		linkedAuctionID,
	)
}
