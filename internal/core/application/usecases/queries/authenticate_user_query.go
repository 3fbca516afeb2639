package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery verifies a login attempt against stored credentials.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
// Both email and password are required.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	if email == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticatedUserResponse represents a successfully verified account.
type AuthenticatedUserResponse struct {
	ID    kernel.UUID
	Role  string
	Name  string
	Email string
}
