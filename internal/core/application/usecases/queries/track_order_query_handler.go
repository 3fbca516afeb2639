package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shiptrack/internal/pkg/errs"
)

// TrackOrderQueryHandler resolves a tracking or AWB number to a shipment and
// its history.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns an error wrapping errs.ErrObjectNotFound when neither the tracking
// number nor the AWB number matches a shipment.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderResponse{}, err
	}

	orderResp, err := h.findOrder(ctx, query.Number())
	if err != nil {
		return TrackOrderResponse{}, err
	}

	historyHandler := NewGetOrderHistoryQueryHandler(h.db)
	historyQuery, err := NewGetOrderHistoryQuery(orderResp.ID)
	if err != nil {
		return TrackOrderResponse{}, err
	}

	history, err := historyHandler.Handle(ctx, historyQuery)
	if err != nil {
		return TrackOrderResponse{}, err
	}

	return TrackOrderResponse{Order: orderResp, History: history}, nil
}

func (h TrackOrderQueryHandler) findOrder(ctx context.Context, number string) (OrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE tracking_number = ? OR awb_number = ?
		LIMIT 1
	`, number, number).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("tracking number", number)
	}

	return scanOrderRow(rows, time.Now().UTC())
}
