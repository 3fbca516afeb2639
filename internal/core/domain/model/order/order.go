package order

import (
	"errors"
	"fmt"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsClosed is returned when attempting to assign a delivery agent
	// to an order that has reached a terminal status.
	ErrOrderIsClosed = errors.New("order is in a terminal status")
)

// PickupDelayThreshold is how long an order may sit in pending before it is
// flagged as a delayed pickup.
const PickupDelayThreshold = 24 * time.Hour

// ParcelDetails groups the descriptive shipment attributes that are captured
// at pickup request time and never participate in lifecycle decisions.
type ParcelDetails struct {
	PackageType          string
	ContentDescription   string
	PaymentStatus        string
	PickupDate           time.Time
	ExpectedDeliveryDate time.Time
}

// Order represents a shipment order in the system. It is the aggregate root
// that manages the order lifecycle from pickup request through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, tracking number, AWB number, and route
//   - The status field changes only through ApplyTransition with a record
//     issued by the transition validator; no other write path exists
//   - Terminal statuses (delivered, cancelled, returned) accept no further
//     transitions and no agent reassignment
//   - Can only be created through NewOrder or restored via RestoreOrder
//
// The version counter supports optimistic locking: the repository refuses an
// update whose loaded version no longer matches the stored row, which
// guarantees at most one in-flight transition per order.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	trackingNumber  string
	awbNumber       string
	route           kernel.Route
	details         ParcelDetails
	status          Status
	deliveryAgentID *kernel.UUID
	createdAt       time.Time
	updatedAt       time.Time
	version         int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order for a customer pickup request.
//
// The order starts in pending status with no delivery agent and version 1.
// now becomes both createdAt and updatedAt; callers pass the clock so the
// aggregate stays deterministic under test.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	trackingNumber string,
	awbNumber string,
	route kernel.Route,
	details ParcelDetails,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setTrackingNumber(trackingNumber),
		o.setAWBNumber(awbNumber),
		o.setRoute(route),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status,
// agent assignment, timestamps, and version. It applies the same field
// validation as NewOrder plus status validity, so corrupt rows surface as
// errors instead of half-valid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	trackingNumber string,
	awbNumber string,
	route kernel.Route,
	details ParcelDetails,
	status Status,
	deliveryAgentID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, customerID, trackingNumber, awbNumber, route, details, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if deliveryAgentID != nil {
		if err = deliveryAgentID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not a positive version", version))
	}

	o.status = status
	o.deliveryAgentID = deliveryAgentID
	o.updatedAt = updatedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence and before writes.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who requested the pickup.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TrackingNumber returns the public tracking number.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// AWBNumber returns the air waybill number.
func (o *Order) AWBNumber() string {
	return o.awbNumber
}

// Route returns the origin/destination pair.
func (o *Order) Route() kernel.Route {
	return o.route
}

// Details returns the descriptive parcel attributes.
func (o *Order) Details() ParcelDetails {
	return o.details
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAgent returns the assigned agent's ID, or nil if unassigned.
func (o *Order) DeliveryAgent() *kernel.UUID {
	return o.deliveryAgentID
}

// CreatedAt returns when the pickup request was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-lock counter as loaded from storage.
// The repository increments it on every successful update.
func (o *Order) Version() int {
	return o.version
}

// ApplyTransition mutates the order's status from an approved transition
// record. The record must have been issued by the transition validator for
// this order at its current status.
//
// A record whose from-status no longer matches the order is stale: either the
// transition was already applied (replay) or a concurrent transition won.
// Such records are rejected with an InvalidTransitionError and the order is
// left untouched.
func (o *Order) ApplyTransition(record TransitionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if !record.OrderID().IsEqual(o.id) {
		return errs.NewValueIsInvalidErrorWithCause("transition record",
			fmt.Errorf("record targets order %s, not %s", record.OrderID(), o.id))
	}
	if record.From() != o.status {
		return NewInvalidTransitionError(o.status, record.To())
	}

	newStatus, err := o.status.TransitionTo(record.To())
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = record.Timestamp()
	return nil
}

// AssignAgent binds the order to a delivery agent and bumps updatedAt.
//
// Assignment never touches the status field. Reassignment is permitted at any
// point before a terminal status; closed orders return ErrOrderIsClosed.
// The caller verifies that agentID references a user with the delivery agent
// role before calling.
func (o *Order) AssignAgent(agentID kernel.UUID, now time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("cannot assign agent to %s order: %w", o.status, ErrOrderIsClosed)
	}

	o.deliveryAgentID = &agentID
	o.updatedAt = now
	return nil
}

// IsAssignedTo reports whether the order is currently assigned to the given agent.
func (o *Order) IsAssignedTo(agentID kernel.UUID) bool {
	return o.deliveryAgentID != nil && o.deliveryAgentID.IsEqual(agentID)
}

// IsPickupDelayed reports whether the order has been waiting for pickup longer
// than PickupDelayThreshold. True only for pending orders; orders parked in
// hold are not flagged. Pure function of the order state and the given clock,
// used for display tagging and the delayed-pickup scan, never for transition
// logic.
func (o *Order) IsPickupDelayed(now time.Time) bool {
	return o.status == StatusPending && now.Sub(o.createdAt) >= PickupDelayThreshold
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setAWBNumber(awbNumber string) error {
	if awbNumber == "" {
		return errs.NewValueIsRequiredError("awb number")
	}
	o.awbNumber = awbNumber
	return nil
}

func (o *Order) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	o.route = route
	return nil
}

func (o *Order) setDetails(details ParcelDetails) error {
	if details.PackageType == "" {
		return errs.NewValueIsRequiredError("package type")
	}
	if details.PaymentStatus == "" {
		details.PaymentStatus = "unpaid"
	}
	o.details = details
	return nil
}
