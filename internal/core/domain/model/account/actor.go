package account

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
)

// Actor is the identity a request acts under: a user id plus the role the
// session was authenticated with. It is built by the HTTP layer from verified
// token claims and passed explicitly through commands and queries, so
// authorization never depends on ambient state.
//
// Actor is a plain value object; an Actor with a zero id or unknown role
// fails Validate.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an actor from an id and role.
// Validity is checked by Validate, not at construction, because actors are
// assembled from already-verified token claims.
func NewActor(id kernel.UUID, role Role) Actor {
	return Actor{
		id:   id,
		role: role,
	}
}

// ID returns the acting user's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor was authenticated with.
func (a Actor) Role() Role {
	return a.role
}

// Validate checks that the actor carries a usable id and role.
func (a Actor) Validate() error {
	return errors.Join(a.id.Validate(), a.role.Validate())
}
