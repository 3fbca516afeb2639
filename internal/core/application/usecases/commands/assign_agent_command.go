package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a request to bind a shipment to a delivery
// agent. Only admins may assign; the handler also verifies that the target
// user actually holds the delivery agent role.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign a delivery agent.
// Validates that the order ID, agent ID, and actor are valid.
func NewAssignAgentCommand(
	orderID kernel.UUID, agentID kernel.UUID, actor account.Actor,
) (AssignAgentCommand, error) {
	assignCommand := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setAgentID(agentID),
		assignCommand.setActor(actor),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the shipment to assign.
func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the delivery agent to bind.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Actor returns the authenticated user submitting the assignment.
func (c AssignAgentCommand) Actor() account.Actor {
	return c.actor
}

func (c *AssignAgentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *AssignAgentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
