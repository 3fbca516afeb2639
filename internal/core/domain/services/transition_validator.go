package services

import (
	"errors"
	"fmt"
	"time"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

var (
	// ErrForbiddenRole is the sentinel error for actors whose role may not
	// perform the requested operation at all. Not retryable.
	ErrForbiddenRole = errors.New("role is not permitted to perform this operation")

	// ErrNotAssigned is the sentinel error for delivery agents attempting to
	// transition an order that is not assigned to them. Not retryable.
	ErrNotAssigned = errors.New("order is not assigned to this agent")
)

// ForbiddenRoleError reports that the actor's role may not perform the
// requested operation.
type ForbiddenRoleError struct {
	Role account.Role
}

// NewForbiddenRoleError creates a ForbiddenRoleError for the given role.
func NewForbiddenRoleError(role account.Role) *ForbiddenRoleError {
	return &ForbiddenRoleError{Role: role}
}

func (e *ForbiddenRoleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbiddenRole, e.Role)
}

func (e *ForbiddenRoleError) Unwrap() error {
	return ErrForbiddenRole
}

// NotAssignedError reports that a delivery agent tried to transition an order
// assigned to someone else (or to nobody).
type NotAssignedError struct {
	OrderID kernel.UUID
	ActorID kernel.UUID
}

// NewNotAssignedError creates a NotAssignedError for the given order and actor.
func NewNotAssignedError(orderID, actorID kernel.UUID) *NotAssignedError {
	return &NotAssignedError{OrderID: orderID, ActorID: actorID}
}

func (e *NotAssignedError) Error() string {
	return fmt.Sprintf("%s: order is: %s, agent is: %s", ErrNotAssigned, e.OrderID, e.ActorID)
}

func (e *NotAssignedError) Unwrap() error {
	return ErrNotAssigned
}

// TransitionValidator is the single authority deciding whether a requested
// status change may happen. All three constraints live here, server-side:
// graph reachability, actor role, and agent assignment. UI-level filtering of
// status choices is a convenience, never a security boundary.
//
// The validator is pure: it reads the order and decides, producing an
// approved TransitionRecord on success and touching nothing on failure.
// The caller applies the order mutation and the ledger append atomically.
type TransitionValidator struct{}

// NewTransitionValidator creates a TransitionValidator.
func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// Validate checks a requested transition and, if every constraint holds,
// returns the approved transition record stamped with the server clock.
//
// Constraints, in order:
//   - requested must be reachable from the order's current status
//     (*order.InvalidTransitionError, carries the allowed-next set)
//   - the actor's role must be admin or delivery agent (*ForbiddenRoleError)
//   - a delivery agent must be the order's assigned agent (*NotAssignedError)
//   - location and remarks must be non-empty (value-required errors)
//
// No side effects occur on failure; the order is never touched.
func (v TransitionValidator) Validate(
	ord *order.Order,
	requested order.Status,
	actor account.Actor,
	location string,
	remarks string,
	now time.Time,
) (order.TransitionRecord, error) {
	if err := ord.Validate(); err != nil {
		return order.TransitionRecord{}, err
	}
	if err := actor.Validate(); err != nil {
		return order.TransitionRecord{}, err
	}

	if _, err := ord.Status().TransitionTo(requested); err != nil {
		return order.TransitionRecord{}, err
	}

	if !actor.Role().CanTransitionOrders() {
		return order.TransitionRecord{}, NewForbiddenRoleError(actor.Role())
	}

	if actor.Role() == account.RoleDeliveryAgent && !ord.IsAssignedTo(actor.ID()) {
		return order.TransitionRecord{}, NewNotAssignedError(ord.ID(), actor.ID())
	}

	return order.NewTransitionRecord(
		ord.ID(), ord.Status(), requested, location, remarks, actor.ID(), now)
}
