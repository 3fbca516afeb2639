package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

const orderColumns = `
	id,
	customer_id,
	tracking_number,
	awb_number,
	origin,
	destination,
	package_type,
	content_description,
	payment_status,
	pickup_date,
	expected_delivery_date,
	status,
	delivery_agent_id,
	created_at,
	updated_at
`

// GetOrdersByRoleQueryHandler retrieves shipment rows scoped to the actor's
// role. Newest orders come first.
type GetOrdersByRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByRoleQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByRoleQueryHandler(db *gorm.DB) GetOrdersByRoleQueryHandler {
	return GetOrdersByRoleQueryHandler{db: db}
}

// Handle executes the scoped order list query.
// Admins get every order, delivery agents their assigned orders, customers
// their own orders. Results are sorted by creation time, newest first.
func (h GetOrdersByRoleQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRoleQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `SELECT ` + orderColumns + ` FROM orders`
	args := make([]any, 0, 1)

	switch query.Actor().Role() {
	case account.RoleAdmin:
		// no filter
	case account.RoleDeliveryAgent:
		sqlText += ` WHERE delivery_agent_id = ?`
		args = append(args, query.Actor().ID().Bytes())
	default:
		sqlText += ` WHERE customer_id = ?`
		args = append(args, query.Actor().ID().Bytes())
	}
	sqlText += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	orders := make([]OrderResponse, 0)
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows, now)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow scans one orders row selected with orderColumns.
// Shared with the tracking query handler.
func scanOrderRow(rows *sql.Rows, now time.Time) (OrderResponse, error) {
	var (
		id         uuid.UUID
		customerID uuid.UUID
		agentID    uuid.NullUUID
		statusInt  int
		pickup     sql.NullTime
		expected   sql.NullTime
		resp       OrderResponse
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&resp.TrackingNumber,
		&resp.AWBNumber,
		&resp.Origin,
		&resp.Destination,
		&resp.PackageType,
		&resp.ContentDescription,
		&resp.PaymentStatus,
		&pickup,
		&expected,
		&statusInt,
		&agentID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = custID

	if agentID.Valid {
		aID, aErr := kernel.UUIDFromBytes(agentID.UUID[:])
		if aErr != nil {
			return OrderResponse{}, aErr
		}
		resp.DeliveryAgentID = &aID
	}

	status := order.Status(statusInt)
	if err = status.Validate(); err != nil {
		return OrderResponse{}, err
	}
	resp.Status = status.String()
	resp.PickupDate = pickup.Time
	resp.ExpectedDeliveryDate = expected.Time
	resp.IsPickupDelayed = status == order.StatusPending &&
		now.Sub(resp.CreatedAt) >= order.PickupDelayThreshold

	return resp, nil
}
