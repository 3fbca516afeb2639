// Package historyrepo persists the shipment history ledger.
// The ledger is append-only, so this package implements no update or delete.
package historyrepo

import (
	"time"

	"github.com/google/uuid"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// HistoryEntryDTO represents one ledger row. RecordedAt carries the
// server-assigned transition time, so automatic time tracking is off.
type HistoryEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Status     int
	Location   string
	Remarks    string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	RecordedAt time.Time `gorm:"index;autoCreateTime:false"`
}

// TableName specifies the database table name for ledger entries.
func (HistoryEntryDTO) TableName() string {
	return "shipment_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *order.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		Status:     int(entry.Status()),
		Location:   entry.Location(),
		Remarks:    entry.Remarks(),
		ActorID:    entry.ActorID().Bytes(),
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain converts a database row back to a ledger entry.
func toDomain(dto HistoryEntryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreHistoryEntry(
		id,
		orderID,
		order.Status(dto.Status),
		dto.Location,
		dto.Remarks,
		actorID,
		dto.RecordedAt,
	)
}
