package errs

import (
	"errors"
	"fmt"
)

// ErrConcurrencyConflict is the sentinel error for optimistic-lock failures.
// It indicates that an aggregate was modified by a concurrent transaction
// between read and write; callers should re-fetch the aggregate and retry
// the whole operation rather than re-applying stale state.
var ErrConcurrencyConflict = errors.New("concurrency conflict")

// ConcurrencyConflictError reports that an update of the object identified by
// ParamName/ID was rejected because its stored version no longer matched the
// version the caller had read.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError without an underlying cause.
func NewConcurrencyConflictError(paramName string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewConcurrencyConflictErrorWithCause creates a ConcurrencyConflictError wrapping the given cause.
func NewConcurrencyConflictErrorWithCause(paramName string, id any, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConcurrencyConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConcurrencyConflict, e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
