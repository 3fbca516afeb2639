package order

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created through one of the constructors.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry constructor")
)

// HistoryEntry is one line of the shipment history ledger: the status an
// order entered, where, why, by whom, and when.
//
// Entries are immutable once created and are never updated or deleted. For
// any order, the entries read in recordedAt order reconstruct a valid walk of
// the status transition graph; the transition validator upstream guarantees
// this, the ledger itself only preserves it.
type HistoryEntry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	status     Status
	location   string
	remarks    string
	actorID    kernel.UUID
	recordedAt time.Time

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewHistoryEntry creates the ledger entry for an approved transition record.
// The entry takes the record's server-assigned timestamp, so the ledger clock
// is authoritative and client-submitted times never enter the history.
func NewHistoryEntry(id kernel.UUID, record TransitionRecord) (*HistoryEntry, error) {
	if err := errors.Join(id.Validate(), record.Validate()); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:            id,
		orderID:       record.OrderID(),
		status:        record.To(),
		location:      record.Location(),
		remarks:       record.Remarks(),
		actorID:       record.ActorID(),
		recordedAt:    record.Timestamp(),
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry reconstructs a ledger entry from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	location string,
	remarks string,
	actorID kernel.UUID,
	recordedAt time.Time,
) (*HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		actorID.Validate(),
	); err != nil {
		return nil, err
	}
	if location == "" {
		return nil, errs.NewValueIsRequiredError("location")
	}
	if remarks == "" {
		return nil, errs.NewValueIsRequiredError("remarks")
	}

	return &HistoryEntry{
		id:            id,
		orderID:       orderID,
		status:        status,
		location:      location,
		remarks:       remarks,
		actorID:       actorID,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (e *HistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *HistoryEntry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order this entry belongs to.
func (e *HistoryEntry) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the status the order entered with this entry.
func (e *HistoryEntry) Status() Status {
	return e.status
}

// Location returns where the transition happened.
func (e *HistoryEntry) Location() string {
	return e.location
}

// Remarks returns the operator note recorded with the transition.
func (e *HistoryEntry) Remarks() string {
	return e.remarks
}

// ActorID returns who performed the transition.
func (e *HistoryEntry) ActorID() kernel.UUID {
	return e.actorID
}

// RecordedAt returns the server time of the transition.
func (e *HistoryEntry) RecordedAt() time.Time {
	return e.recordedAt
}
