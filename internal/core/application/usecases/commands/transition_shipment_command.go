package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand represents a request to move a shipment to a new
// lifecycle status. Carries the acting user so the handler can enforce role
// and assignment constraints server-side.
//
// Example:
//
//	cmd, err := NewTransitionShipmentCommand(
//	    orderID, order.StatusPickedUp, "Mumbai - Andheri East", "Collected", actor)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionShipmentCommandHandler(uowFactory, publisher)
//	result, err := handler.Handle(ctx, cmd)
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	status   order.Status
	location string
	remarks  string
	actor    account.Actor

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to transition a shipment.
// Validates that the order ID, requested status, and actor are valid and that
// location and remarks are present.
func NewTransitionShipmentCommand(
	orderID kernel.UUID,
	status order.Status,
	location string,
	remarks string,
	actor account.Actor,
) (TransitionShipmentCommand, error) {
	transitionCommand := TransitionShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setStatus(status),
		transitionCommand.setLocation(location),
		transitionCommand.setRemarks(remarks),
		transitionCommand.setActor(actor),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionShipmentCommandIsNotConstructed if validation fails.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// OrderID returns the shipment to transition.
func (c TransitionShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c TransitionShipmentCommand) Status() order.Status {
	return c.status
}

// Location returns where the status change happened.
func (c TransitionShipmentCommand) Location() string {
	return c.location
}

// Remarks returns the free-text note accompanying the change.
func (c TransitionShipmentCommand) Remarks() string {
	return c.remarks
}

// Actor returns the authenticated user submitting the transition.
func (c TransitionShipmentCommand) Actor() account.Actor {
	return c.actor
}

func (c *TransitionShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionShipmentCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *TransitionShipmentCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

func (c *TransitionShipmentCommand) setRemarks(remarks string) error {
	if remarks == "" {
		return errs.NewValueIsRequiredError("remarks")
	}

	c.remarks = remarks
	return nil
}

func (c *TransitionShipmentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
