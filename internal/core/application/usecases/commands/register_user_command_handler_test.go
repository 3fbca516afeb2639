package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"
)

func newRegisterCommand(t *testing.T, role account.Role) commands.RegisterUserCommand {
	t.Helper()

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), role, "Priya Sharma", "priya@example.com",
		"+91 98765 43210", "Mumbai", "s3cret-pass")
	require.NoError(t, err)
	return cmd
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t, account.RoleCustomer)

	// Setup mocks
	userRepo := new(MockUserRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", ctx, "priya@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "priya@example.com")).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	user, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, user.ID().IsEqual(cmd.UserID()))
	assert.Equal(t, account.RoleCustomer, user.Role())
	assert.Equal(t, "priya@example.com", user.Email())

	// The stored hash verifies against the submitted password and never
	// equals it.
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash())
	assert.True(t, auth.CheckPassword(user.PasswordHash(), "s3cret-pass"))

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly

	factory := new(MockUserUoWFactory)
	handler := commands.NewRegisterUserCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t, account.RoleCustomer)

	existing, err := account.RestoreUser(
		kernel.NewUUID(), account.RoleCustomer, "Priya Sharma", "priya@example.com",
		"", "", "$2a$10$hash")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", ctx, "priya@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	userRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
