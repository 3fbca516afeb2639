package commands

import (
	"context"
	"errors"
	"fmt"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when registering with an email that
// another account already uses.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler handles the business logic for user registration.
// Hashes the password and persists the account in one transaction.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registration operations.
// Requires a UserUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Rejects emails that are already taken; the unique index on email is the
// backstop for races between concurrent registrations.
func (h *RegisterUserCommandHandler) Handle(
	ctx context.Context, cmd RegisterUserCommand,
) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := account.NewUser(
		cmd.UserID(), cmd.Role(), cmd.Name(), cmd.Email(),
		cmd.Mobile(), cmd.City(), passwordHash)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyRegistered, cmd.Email())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
