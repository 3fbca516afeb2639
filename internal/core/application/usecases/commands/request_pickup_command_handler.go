package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// RequestPickupCommandHandler handles the business logic for pickup requests.
// Creates new orders in pending status with generated tracking and AWB numbers.
//
// Example:
//
//	handler := NewRequestPickupCommandHandler(uowFactory)
//	cmd, _ := NewRequestPickupCommand(orderID, customerID,
//	    "Mumbai", "Delhi", "box", "books", "unpaid", pickup, expected)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("pickup request failed: %w", err)
//	}
//	fmt.Println(result.TrackingNumber())
type RequestPickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestPickupCommandHandler creates a handler for pickup request operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRequestPickupCommandHandler(uowFactory OrderUoWFactory) RequestPickupCommandHandler {
	return RequestPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup request command.
// Generates the tracking and AWB numbers and creates the order in pending
// status. Uses a transaction to ensure the order is persisted or rolled back
// on error. Returns the created order so callers can surface the numbers.
func (h *RequestPickupCommandHandler) Handle(
	ctx context.Context, cmd RequestPickupCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	route, err := kernel.NewRoute(cmd.Origin(), cmd.Destination())
	if err != nil {
		return nil, err
	}

	details := order.ParcelDetails{
		PackageType:          cmd.PackageType(),
		ContentDescription:   cmd.ContentDescription(),
		PaymentStatus:        cmd.PaymentStatus(),
		PickupDate:           cmd.PickupDate(),
		ExpectedDeliveryDate: cmd.ExpectedDeliveryDate(),
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		newTrackingNumber(),
		newAWBNumber(),
		route,
		details,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// newTrackingNumber generates a public tracking number of the form
// ST-XXXXXXXXXX. Randomness comes from a fresh UUID, which keeps collisions
// as unlikely as order IDs colliding; the unique index is the backstop.
func newTrackingNumber() string {
	id := kernel.NewUUID().Bytes()
	return fmt.Sprintf("ST-%s", strings.ToUpper(fmt.Sprintf("%x", id[0:5])))
}

// newAWBNumber generates an air waybill number of the form AWB-XXXXXXXXXX.
func newAWBNumber() string {
	id := kernel.NewUUID().Bytes()
	return fmt.Sprintf("AWB-%s", strings.ToUpper(fmt.Sprintf("%x", id[0:5])))
}
