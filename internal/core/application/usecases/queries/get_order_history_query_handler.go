package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

const historySelect = `
	SELECT
		h.id,
		h.status,
		h.location,
		h.remarks,
		h.actor_id,
		u.name,
		h.recorded_at
	FROM shipment_history h
	LEFT JOIN users u ON u.id = h.actor_id
	WHERE h.order_id = ?
	ORDER BY h.recorded_at, h.id
`

// GetOrderHistoryQueryHandler retrieves the ledger entries for one shipment.
// Entries come back oldest first with the entry id as tiebreaker, so
// re-reading always yields the same sequence plus anything appended since.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the history query for one order.
// Returns an empty slice for orders with no recorded transitions yet.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(historySelect, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		entry, scanErr := scanHistoryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// scanHistoryRow scans one row selected with historySelect.
// Shared with the tracking query handler.
func scanHistoryRow(rows *sql.Rows) (HistoryEntryResponse, error) {
	var (
		id        uuid.UUID
		actorID   uuid.UUID
		statusInt int
		actorName sql.NullString
		entry     HistoryEntryResponse
	)

	if err := rows.Scan(
		&id,
		&statusInt,
		&entry.Location,
		&entry.Remarks,
		&actorID,
		&actorName,
		&entry.RecordedAt,
	); err != nil {
		return HistoryEntryResponse{}, err
	}

	entryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	entry.ID = entryID

	aID, err := kernel.UUIDFromBytes(actorID[:])
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	entry.ActorID = aID

	status := order.Status(statusInt)
	if err = status.Validate(); err != nil {
		return HistoryEntryResponse{}, err
	}
	entry.Status = status.String()
	entry.ActorName = actorName.String

	return entry, nil
}
