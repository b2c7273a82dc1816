// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, role-gated authorization, transaction management, persistence
// and post-commit event publishing.
package commands

import (
	"context"

	"freightbid/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PrincipalRepoFactory provides access to the principal repository within a transaction.
	PrincipalRepoFactory interface {
		PrincipalRepository() ports.PrincipalRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// AuctionRepoFactory provides access to the auction repository within a transaction.
	AuctionRepoFactory interface {
		AuctionRepository() ports.AuctionRepository
	}

	// TransportRepoFactory provides access to the transport repository within a transaction.
	TransportRepoFactory interface {
		TransportRepository() ports.TransportRepository
	}

	// AccessUoW manages transactions for role administration. Every other
	// unit of work embeds the principal repository too, since all mutating
	// operations start with a role check.
	AccessUoW interface {
		TxManager
		PrincipalRepoFactory
	}

	// AccessUoWFactory creates new access unit of work instances.
	AccessUoWFactory interface {
		Create() AccessUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		PrincipalRepoFactory
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// AuctionUoW manages transactions for auction operations, which also
	// read and link the auctioned product.
	AuctionUoW interface {
		TxManager
		PrincipalRepoFactory
		ProductRepoFactory
		AuctionRepoFactory
	}

	// AuctionUoWFactory creates new auction unit of work instances.
	AuctionUoWFactory interface {
		Create() AuctionUoW
	}

	// TransportUoW manages transactions for transport operations, which
	// cross back into the originating auction and product on creation.
	TransportUoW interface {
		TxManager
		PrincipalRepoFactory
		ProductRepoFactory
		AuctionRepoFactory
		TransportRepoFactory
	}

	// TransportUoWFactory creates new transport unit of work instances.
	TransportUoWFactory interface {
		Create() TransportUoW
	}
)
