package historyrepo

import (
	"context"

	"gorm.io/gorm"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append saves a new ledger entry. Callers run Append in the same transaction
// as the order status update, so both persist together or not at all.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *order.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListForOrder retrieves all ledger entries for one order, oldest first with
// the entry id as tiebreaker.
func (r *GormHistoryRepository) ListForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*order.HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
