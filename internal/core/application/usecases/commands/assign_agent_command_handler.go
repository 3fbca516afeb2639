package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"
)

// ErrInvalidAgent is the sentinel error for assignment targets that do not
// hold the delivery agent role.
var ErrInvalidAgent = errors.New("user is not a delivery agent")

// InvalidAgentError reports an assignment target that cannot carry shipments.
type InvalidAgentError struct {
	AgentID kernel.UUID
	Role    account.Role
}

// NewInvalidAgentError creates an InvalidAgentError for the given user.
func NewInvalidAgentError(agentID kernel.UUID, role account.Role) *InvalidAgentError {
	return &InvalidAgentError{AgentID: agentID, Role: role}
}

func (e *InvalidAgentError) Error() string {
	return fmt.Sprintf("%s: %s has role %s", ErrInvalidAgent, e.AgentID, e.Role)
}

func (e *InvalidAgentError) Unwrap() error {
	return ErrInvalidAgent
}

// AssignAgentCommandHandler handles the business logic for agent assignment.
// Assignment is admin-only, the target must hold the delivery agent role, and
// the order must not be in a terminal status. Reassignment of an already
// assigned order simply replaces the agent.
//
// Example:
//
//	handler := NewAssignAgentCommandHandler(uowFactory)
//	cmd, _ := NewAssignAgentCommand(orderID, agentID, adminActor)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignAgentCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignAgentCommandHandler creates a handler for assignment operations.
// Requires an AssignUoWFactory for transactional persistence.
func NewAssignAgentCommandHandler(uowFactory AssignUoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
//
// Assignment races with status transitions on the same order row, so the
// write goes through the same optimistic lock and is retried against fresh
// state on conflict, up to maxTransitionAttempts times.
func (h *AssignAgentCommandHandler) Handle(
	ctx context.Context, cmd AssignAgentCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Role().CanAssignAgents() {
		return nil, services.NewForbiddenRoleError(cmd.Actor().Role())
	}

	var updated *order.Order
	var err error
	for attempt := 1; attempt <= maxTransitionAttempts; attempt++ {
		updated, err = h.attempt(ctx, cmd)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return nil, err
		}
	}

	return nil, err
}

func (h *AssignAgentCommandHandler) attempt(
	ctx context.Context, cmd AssignAgentCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agent, err := uow.UserRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}
	if agent.Role() != account.RoleDeliveryAgent {
		return nil, NewInvalidAgentError(agent.ID(), agent.Role())
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.AssignAgent(cmd.AgentID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
