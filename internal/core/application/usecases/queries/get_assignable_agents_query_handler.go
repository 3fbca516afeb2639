package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/services"
)

// GetAssignableAgentsQueryHandler retrieves delivery agents for the admin
// assignment picker.
type GetAssignableAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignableAgentsQueryHandler creates a handler for agent list queries.
// Requires a GORM database connection for query execution.
func NewGetAssignableAgentsQueryHandler(db *gorm.DB) GetAssignableAgentsQueryHandler {
	return GetAssignableAgentsQueryHandler{db: db}
}

// Handle executes the agent list query.
// Only admins may list agents; other roles get a ForbiddenRoleError.
// Results are sorted by name.
func (h GetAssignableAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignableAgentsQuery,
) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().Role().CanAssignAgents() {
		return nil, services.NewForbiddenRoleError(query.Actor().Role())
	}

	sqlText := `
		SELECT
			id,
			name,
			email,
			mobile,
			city
		FROM users
		WHERE role = ?
	`
	args := []any{account.RoleDeliveryAgent}
	if query.City() != "" {
		sqlText += ` AND city = ?`
		args = append(args, query.City())
	}
	sqlText += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]AgentResponse, 0)
	for rows.Next() {
		var agent AgentResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &agent.Name, &agent.Email, &agent.Mobile, &agent.City); err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		agent.ID = agentID
		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
