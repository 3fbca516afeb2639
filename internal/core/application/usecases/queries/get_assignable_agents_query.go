package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetAssignableAgentsQueryIsNotConstructed = errors.New(
	"GetAssignableAgentsQuery must be created via NewGetAssignableAgentsQuery constructor",
)

// GetAssignableAgentsQuery retrieves delivery agents available for
// assignment, optionally filtered by city. Admin only.
type GetAssignableAgentsQuery struct {
	actor account.Actor
	city  string

	guard guard.ConstructorGuard
}

// NewGetAssignableAgentsQuery creates an agent list query.
// city may be empty, which returns agents from every city.
func NewGetAssignableAgentsQuery(actor account.Actor, city string) (GetAssignableAgentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAssignableAgentsQuery{}, err
	}

	return GetAssignableAgentsQuery{
		actor: actor,
		city:  city,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignableAgentsQueryIsNotConstructed if validation fails.
func (q GetAssignableAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignableAgentsQueryIsNotConstructed)
}

// Actor returns the requesting user.
func (q GetAssignableAgentsQuery) Actor() account.Actor {
	return q.actor
}

// City returns the optional city filter. Empty means no filter.
func (q GetAssignableAgentsQuery) City() string {
	return q.city
}

// AgentResponse represents one assignable delivery agent.
type AgentResponse struct {
	ID     kernel.UUID
	Name   string
	Email  string
	Mobile string
	City   string
}
