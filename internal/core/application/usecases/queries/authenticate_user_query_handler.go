package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so a login response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthenticateUserQueryHandler verifies login credentials against the users
// table.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
// Requires a GORM database connection for query execution.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the login query.
// Returns ErrInvalidCredentials when the email is unknown or the password
// does not match the stored hash.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticatedUserResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedUserResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			role,
			name,
			email,
			password_hash
		FROM users
		WHERE email = ?
		LIMIT 1
	`, query.Email()).Rows()
	if err != nil {
		return AuthenticatedUserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AuthenticatedUserResponse{}, err
		}
		return AuthenticatedUserResponse{}, ErrInvalidCredentials
	}

	var (
		id           uuid.UUID
		roleInt      int
		resp         AuthenticatedUserResponse
		passwordHash string
	)
	if err = rows.Scan(&id, &roleInt, &resp.Name, &resp.Email, &passwordHash); err != nil {
		return AuthenticatedUserResponse{}, err
	}

	if !auth.CheckPassword(passwordHash, query.Password()) {
		return AuthenticatedUserResponse{}, ErrInvalidCredentials
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticatedUserResponse{}, err
	}
	role := account.Role(roleInt)
	if err = role.Validate(); err != nil {
		return AuthenticatedUserResponse{}, err
	}
	resp.ID = userID
	resp.Role = role.String()

	return resp, nil
}
