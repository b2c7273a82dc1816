package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. The serialized
// execution model of the marketplace maps onto it directly: every command
// either commits all of its effects or none, and no intermediate state is
// observable by other operations.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PrincipalRepository returns a PrincipalRepository bound to the current transaction.
	PrincipalRepository() PrincipalRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// AuctionRepository returns an AuctionRepository bound to the current transaction.
	AuctionRepository() AuctionRepository

	// TransportRepository returns a TransportRepository bound to the current transaction.
	TransportRepository() TransportRepository
}
