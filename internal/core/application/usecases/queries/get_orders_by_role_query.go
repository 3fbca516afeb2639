// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the aggregates and read projection rows straight from
// the database, returning plain response structs shaped for the API.
package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrdersByRoleQueryIsNotConstructed = errors.New(
	"GetOrdersByRoleQuery must be created via NewGetOrdersByRoleQuery constructor",
)

// GetOrdersByRoleQuery retrieves the shipments visible to an actor.
// Admins see every order, delivery agents see orders assigned to them, and
// customers see orders they created.
//
// Example:
//
//	query, _ := NewGetOrdersByRoleQuery(actor)
//	handler := NewGetOrdersByRoleQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersByRoleQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersByRoleQuery creates a query scoped to the given actor.
func NewGetOrdersByRoleQuery(actor account.Actor) (GetOrdersByRoleQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersByRoleQuery{}, err
	}

	return GetOrdersByRoleQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByRoleQueryIsNotConstructed if validation fails.
func (q GetOrdersByRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRoleQueryIsNotConstructed)
}

// Actor returns the actor whose visibility scope applies.
func (q GetOrdersByRoleQuery) Actor() account.Actor {
	return q.actor
}

// OrderResponse represents one shipment row shaped for the API.
// IsPickupDelayed is a display tag computed against the server clock; it
// never feeds back into transition decisions.
type OrderResponse struct {
	ID                   kernel.UUID
	CustomerID           kernel.UUID
	TrackingNumber       string
	AWBNumber            string
	Origin               string
	Destination          string
	PackageType          string
	ContentDescription   string
	PaymentStatus        string
	PickupDate           time.Time
	ExpectedDeliveryDate time.Time
	Status               string
	DeliveryAgentID      *kernel.UUID
	IsPickupDelayed      bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
