package account

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser. This ensures all users are properly validated.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User represents a role-bearing actor: an admin, a delivery agent, or a
// customer. Delivery agents may be referenced by any number of orders through
// the order's delivery agent id; the order does not own the agent.
//
// User follows these invariants:
//   - Must have a valid unique identifier and a valid role
//   - Name and email are required; email is unique across users
//   - Can only be created through NewUser or restored via RestoreUser
type User struct {
	id           kernel.UUID
	role         Role
	name         string
	email        string
	mobile       string
	city         string
	passwordHash string

	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates a User with validation. Mobile and city may be empty;
// city is used to filter assignable delivery agents. The password hash is
// produced by the caller (see pkg/auth) and stored opaquely.
func NewUser(id kernel.UUID, role Role, name, email, mobile, city, passwordHash string) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setRole(role),
		user.setName(name),
		user.setEmail(email),
	); err != nil {
		return nil, err
	}

	user.mobile = mobile
	user.city = city
	user.passwordHash = passwordHash
	return user, nil
}

// RestoreUser reconstructs a User from persistence. It applies the same
// validation as NewUser; a row that no longer satisfies the invariants
// surfaces as an error instead of a half-valid aggregate.
func RestoreUser(id kernel.UUID, role Role, name, email, mobile, city, passwordHash string) (*User, error) {
	return NewUser(id, role, name, email, mobile, city, passwordHash)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Mobile returns the user's mobile number. May be empty.
func (u *User) Mobile() string {
	return u.mobile
}

// City returns the city the user operates in. May be empty.
// Used to filter assignable delivery agents.
func (u *User) City() string {
	return u.city
}

// PasswordHash returns the stored password hash. Empty for users that
// authenticate through an external identity provider.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Actor returns the actor view of this user for authorization checks.
func (u *User) Actor() Actor {
	return NewActor(u.id, u.role)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}
