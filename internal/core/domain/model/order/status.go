package order

import (
	"errors"
	"fmt"
	"strings"

	"shiptrack/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel error for status transitions that are
// not permitted by the lifecycle graph. Use errors.Is to classify; the
// concrete *InvalidTransitionError carries the allowed-next set so callers
// can re-offer valid choices.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a shipment order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	pending ──> picked_up ──> in_transit ──> arrived_hub
//	                              │    ▲          │
//	                              ▼    └──────────┤
//	                       out_for_delivery <─────┘
//	                              │
//	                              ▼
//	                          delivered
//
// hold is reachable from picked_up, in_transit, arrived_hub, and
// out_for_delivery, and resumes into in_transit or out_for_delivery (or ends
// in cancelled). cancelled and returned are the other terminal exits.
//
// Status is a value object that validates state transitions and provides the
// snake_case wire names used by the API and the history ledger.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when a pickup request is created.
	// The parcel has not yet been collected from the sender.
	StatusPending

	// StatusPickedUp indicates the parcel was collected from the sender.
	StatusPickedUp

	// StatusInTransit indicates the parcel is moving toward the destination hub.
	StatusInTransit

	// StatusArrivedHub indicates the parcel reached a sorting hub.
	StatusArrivedHub

	// StatusOutForDelivery indicates the parcel is on the last-mile run.
	StatusOutForDelivery

	// StatusDelivered indicates the parcel was handed to the recipient.
	// This is a terminal state with no further transitions allowed.
	StatusDelivered

	// StatusHold indicates delivery is temporarily stopped
	// (address verification, payment, weather).
	StatusHold

	// StatusCancelled indicates the shipment was stopped before completion.
	// This is a terminal state with no further transitions allowed.
	StatusCancelled

	// StatusReturned indicates the parcel went back to the sender.
	// This is a terminal state with no further transitions allowed.
	StatusReturned
)

// getStatusStrings returns wire names for all Status values, including the
// invalid one, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusArrivedHub:     "arrived_hub",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusHold:           "hold",
		StatusCancelled:      "cancelled",
		StatusReturned:       "returned",
	}
}

// getTransitionTable returns the permitted next statuses per current status.
// Terminal statuses map to an empty set. This table is the single source of
// truth for transition validity; no other code may decide reachability.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusInTransit, StatusHold, StatusCancelled},
		StatusInTransit:      {StatusArrivedHub, StatusOutForDelivery, StatusHold, StatusReturned},
		StatusArrivedHub:     {StatusInTransit, StatusOutForDelivery, StatusHold},
		StatusOutForDelivery: {StatusDelivered, StatusHold, StatusReturned},
		StatusHold:           {StatusInTransit, StatusOutForDelivery, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
		StatusReturned:       {},
	}
}

// StatusFromString parses a wire name ("pending", "picked_up", ...) into a
// Status. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the lifecycle graph.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no outgoing transitions.
// delivered, cancelled, and returned are terminal.
func (s Status) IsTerminal() bool {
	next, ok := getTransitionTable()[s]
	return ok && len(next) == 0
}

// AllowedNext returns the statuses reachable from s in one transition.
// The slice is a fresh copy in stable declaration order; empty for terminal
// or invalid statuses.
func (s Status) AllowedNext() []Status {
	next := getTransitionTable()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether next is directly reachable from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to next against the transition table.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (StatusUnknown, *InvalidTransitionError) if next is not reachable from s
//
// This method only checks graph reachability; role and assignment constraints
// are enforced by the transition validator.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}

// InvalidTransitionError reports a requested transition that is not permitted
// by the lifecycle graph. Allowed carries the valid next statuses from From so
// the caller can re-offer choices.
type InvalidTransitionError struct {
	From      Status
	Requested Status
	Allowed   []Status
}

// NewInvalidTransitionError creates an InvalidTransitionError with the
// allowed-next set captured from the transition table.
func NewInvalidTransitionError(from, requested Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:      from,
		Requested: requested,
		Allowed:   from.AllowedNext(),
	}
}

func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = s.String()
	}
	if len(allowed) == 0 {
		return fmt.Sprintf("%s: %s is terminal, %s requested",
			ErrInvalidTransition, e.From, e.Requested)
	}
	return fmt.Sprintf("%s: %s -> %s (allowed: %s)",
		ErrInvalidTransition, e.From, e.Requested, strings.Join(allowed, ", "))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
