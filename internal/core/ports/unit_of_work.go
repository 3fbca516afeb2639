package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage transaction lifecycle.
//
// The transition workflow relies on this boundary: validate, apply, and the
// ledger append run inside one UnitOfWork, so a failure of either write rolls
// back both and the history can never diverge from the order status.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// HistoryRepository returns a HistoryRepository bound to the current transaction.
	HistoryRepository() HistoryRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}
