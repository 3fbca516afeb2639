package kernel

import (
	"errors"
	"fmt"

	"shiptrack/internal/pkg/errs"

	"shiptrack/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when attempting to use an improperly
// initialized Route. Routes must be created via NewRoute.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError(
	"route must be created via NewRoute constructor")

// Route is an immutable value object holding the origin and destination of a
// shipment. Both sides are free-text city/address strings and must be
// non-empty. The zero value is invalid; use NewRoute.
//
// Example:
//
//	route, err := kernel.NewRoute("Mumbai", "Delhi")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(route) // Output: Mumbai -> Delhi
type Route struct { //nolint:recvcheck //using for validation
	origin      string
	destination string
	guard       guard.ConstructorGuard
}

// NewRoute creates a Route from origin and destination strings.
// Returns a validation error if either side is empty.
func NewRoute(origin, destination string) (Route, error) {
	route := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(route.setOrigin(origin), route.setDestination(destination)); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Origin returns the shipment origin.
func (r Route) Origin() string {
	return r.origin
}

// Destination returns the shipment destination.
func (r Route) Destination() string {
	return r.destination
}

// String implements fmt.Stringer for logging and display.
func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.origin, r.destination)
}

// IsEqual reports whether two routes have the same origin and destination.
func (r Route) IsEqual(other Route) bool {
	return r.origin == other.origin && r.destination == other.destination
}

// Validate ensures the Route was created through NewRoute.
// Called when reconstructing orders from persistence.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	r.origin = origin
	return nil
}

func (r *Route) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	r.destination = destination
	return nil
}
