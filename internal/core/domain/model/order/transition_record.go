package order

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	// ErrTransitionRecordIsNotConstructed is returned when a TransitionRecord
	// was not created through NewTransitionRecord. Only records produced by the
	// transition validator may be applied to an order.
	ErrTransitionRecordIsNotConstructed = errors.New(
		"TransitionRecord must be created via NewTransitionRecord constructor")
)

// TransitionRecord is an approved status change: the output of a successful
// validation, carrying everything needed to mutate the order and append the
// matching history ledger entry.
//
// The record is immutable. Its timestamp is assigned by the server clock at
// validation time and becomes the authoritative time of the transition;
// client-submitted times are never used.
type TransitionRecord struct {
	orderID   kernel.UUID
	from      Status
	to        Status
	location  string
	remarks   string
	actorID   kernel.UUID
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewTransitionRecord creates an approved transition record.
//
// It enforces the record-level constraints:
//   - from -> to must be permitted by the transition table
//   - location and remarks must be non-empty
//   - orderID and actorID must be valid, timestamp non-zero
//
// Role and assignment constraints are the transition validator's job; it is
// the only intended caller.
func NewTransitionRecord(
	orderID kernel.UUID,
	from Status,
	to Status,
	location string,
	remarks string,
	actorID kernel.UUID,
	timestamp time.Time,
) (TransitionRecord, error) {
	if err := errors.Join(
		orderID.Validate(),
		from.Validate(),
		actorID.Validate(),
	); err != nil {
		return TransitionRecord{}, err
	}

	if _, err := from.TransitionTo(to); err != nil {
		return TransitionRecord{}, err
	}
	if location == "" {
		return TransitionRecord{}, errs.NewValueIsRequiredError("location")
	}
	if remarks == "" {
		return TransitionRecord{}, errs.NewValueIsRequiredError("remarks")
	}
	if timestamp.IsZero() {
		return TransitionRecord{}, errs.NewValueIsRequiredError("timestamp")
	}

	return TransitionRecord{
		orderID:   orderID,
		from:      from,
		to:        to,
		location:  location,
		remarks:   remarks,
		actorID:   actorID,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through the constructor.
func (r TransitionRecord) Validate() error {
	return r.guard.Validate(ErrTransitionRecordIsNotConstructed)
}

// OrderID returns the order the transition was approved for.
func (r TransitionRecord) OrderID() kernel.UUID {
	return r.orderID
}

// From returns the status the order held when the transition was approved.
func (r TransitionRecord) From() Status {
	return r.from
}

// To returns the approved target status.
func (r TransitionRecord) To() Status {
	return r.to
}

// Location returns where the transition happened. Free text, required.
func (r TransitionRecord) Location() string {
	return r.location
}

// Remarks returns the operator note for the transition. Free text, required.
func (r TransitionRecord) Remarks() string {
	return r.remarks
}

// ActorID returns who performed the transition.
func (r TransitionRecord) ActorID() kernel.UUID {
	return r.actorID
}

// Timestamp returns the server-assigned time of the transition.
func (r TransitionRecord) Timestamp() time.Time {
	return r.timestamp
}
