package commands

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrRequestPickupCommandIsNotConstructed = errors.New(
	"RequestPickupCommand must be created via NewRequestPickupCommand constructor",
)

// RequestPickupCommand represents a customer's request to ship a parcel.
// Encapsulates the route, the parcel description, and the requested dates.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewRequestPickupCommand(orderID, customerID,
//	    "Mumbai", "Delhi", "box", "books", "unpaid", pickup, expected)
//	if err != nil {
//	    return fmt.Errorf("invalid pickup request: %w", err)
//	}
//
//	handler := NewRequestPickupCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type RequestPickupCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	customerID           kernel.UUID
	origin               string
	destination          string
	packageType          string
	contentDescription   string
	paymentStatus        string
	pickupDate           time.Time
	expectedDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewRequestPickupCommand creates a command to register a new pickup request.
// Validates that both IDs are valid and that route and package type are
// present. Payment status defaults to unpaid when empty.
func NewRequestPickupCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	origin string,
	destination string,
	packageType string,
	contentDescription string,
	paymentStatus string,
	pickupDate time.Time,
	expectedDeliveryDate time.Time,
) (RequestPickupCommand, error) {
	pickupCommand := RequestPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupCommand.setOrderID(orderID),
		pickupCommand.setCustomerID(customerID),
		pickupCommand.setRoute(origin, destination),
		pickupCommand.setPackageType(packageType),
	); err != nil {
		return RequestPickupCommand{}, err
	}

	pickupCommand.contentDescription = contentDescription
	pickupCommand.paymentStatus = paymentStatus
	pickupCommand.pickupDate = pickupDate
	pickupCommand.expectedDeliveryDate = expectedDeliveryDate
	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestPickupCommandIsNotConstructed if validation fails.
func (c RequestPickupCommand) Validate() error {
	return c.guard.Validate(ErrRequestPickupCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c RequestPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer requesting the pickup.
func (c RequestPickupCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Origin returns the pickup city.
func (c RequestPickupCommand) Origin() string {
	return c.origin
}

// Destination returns the delivery city.
func (c RequestPickupCommand) Destination() string {
	return c.destination
}

// PackageType returns the declared package type.
func (c RequestPickupCommand) PackageType() string {
	return c.packageType
}

// ContentDescription returns the declared parcel contents. May be empty.
func (c RequestPickupCommand) ContentDescription() string {
	return c.contentDescription
}

// PaymentStatus returns the declared payment status. May be empty.
func (c RequestPickupCommand) PaymentStatus() string {
	return c.paymentStatus
}

// PickupDate returns the requested pickup date.
func (c RequestPickupCommand) PickupDate() time.Time {
	return c.pickupDate
}

// ExpectedDeliveryDate returns the promised delivery date.
func (c RequestPickupCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

func (c *RequestPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestPickupCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RequestPickupCommand) setRoute(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.origin = origin
	c.destination = destination
	return nil
}

func (c *RequestPickupCommand) setPackageType(packageType string) error {
	if packageType == "" {
		return errs.NewValueIsRequiredError("package type")
	}

	c.packageType = packageType
	return nil
}
