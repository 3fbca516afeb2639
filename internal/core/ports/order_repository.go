// Package ports defines repository and transaction interfaces for the domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// locking: the write succeeds only if the stored version still matches the
	// version the aggregate was loaded with, and increments it. A mismatch
	// returns an error satisfying errors.Is(err, errs.ErrConcurrencyConflict);
	// the caller should re-fetch and retry the whole validate-apply sequence.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its current status, assignment, and version.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by tracking number or AWB number.
	// Used by the public tracking endpoint.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllPendingOlderThan retrieves pending orders created at or before the
	// given cutoff. Used by the delayed-pickup scan.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
