package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// HistoryRepository defines the persistence contract for the shipment history
// ledger. The ledger is append-only: there is deliberately no update or
// delete operation.
type HistoryRepository interface {
	// Append persists a new immutable ledger entry.
	// Must run in the same transaction as the order status update so that
	// both persist together or not at all.
	Append(ctx context.Context, entry *order.HistoryEntry) error

	// ListForOrder retrieves all ledger entries for one order in ascending
	// recordedAt order (id as tiebreaker). Re-querying returns the same set
	// plus any entries appended since.
	ListForOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error)
}
