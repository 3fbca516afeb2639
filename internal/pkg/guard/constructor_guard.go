// Package guard provides a small defensive-programming helper that ensures
// value objects, commands, and queries are only created through their
// designated constructor functions.
//
// By embedding a ConstructorGuard in a struct, code can detect whether the
// struct was properly initialized through its constructor or created as a
// zero value, and reject the latter before any business rules run on it.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. Validation always fails with a meaningful
// message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation; a guard obtained from NewConstructorGuard
// passes it. Guards are immutable and safe for concurrent use.
//
// Example:
//
//	type TrackOrderQuery struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewTrackOrderQuery(number string) TrackOrderQuery {
//	    return TrackOrderQuery{number: number, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q TrackOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it from the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
