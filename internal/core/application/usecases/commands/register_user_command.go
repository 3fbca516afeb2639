package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a user account.
// Role gating happens at the transport layer: public registration always
// submits the customer role, while agent and admin creation sits behind
// admin-only routes.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	role     account.Role
	name     string
	email    string
	mobile   string
	city     string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// Validates that the ID and role are valid and that name, email, and password
// are present. Mobile and city may be empty.
func NewRegisterUserCommand(
	userID kernel.UUID,
	role account.Role,
	name string,
	email string,
	mobile string,
	city string,
	password string,
) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setUserID(userID),
		registerCommand.setRole(role),
		registerCommand.setName(name),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	registerCommand.mobile = mobile
	registerCommand.city = city
	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role the account is created with.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

// Name returns the user's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the user's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Mobile returns the user's mobile number. May be empty.
func (c RegisterUserCommand) Mobile() string {
	return c.mobile
}

// City returns the city the user operates in. May be empty.
func (c RegisterUserCommand) City() string {
	return c.city
}

// Password returns the plaintext password to hash. Never persisted as is.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
