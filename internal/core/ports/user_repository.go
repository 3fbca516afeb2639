package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and the email must not already be taken.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by email. Used by login.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
