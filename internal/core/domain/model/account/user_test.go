package account_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates_valid_agent", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()

		// When
		user, err := account.NewUser(id, account.RoleDeliveryAgent,
			"Ravi Kumar", "ravi@example.com", "+91-9800000001", "Mumbai", "hash")

		// Then
		require.NoError(t, err)
		require.NoError(t, user.Validate())
		assert.True(t, user.ID().IsEqual(id))
		assert.Equal(t, account.RoleDeliveryAgent, user.Role())
		assert.Equal(t, "Ravi Kumar", user.Name())
		assert.Equal(t, "ravi@example.com", user.Email())
		assert.Equal(t, "Mumbai", user.City())
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		// When
		_, err := account.NewUser(kernel.NewUUID(), account.RoleUnknown,
			"Ravi", "ravi@example.com", "", "", "")

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_name_and_email", func(t *testing.T) {
		// When
		_, err := account.NewUser(kernel.NewUUID(), account.RoleCustomer, "", "", "", "", "")

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		// When
		_, err := account.NewUser(kernel.UUID{}, account.RoleCustomer,
			"Asha", "asha@example.com", "", "", "")

		// Then
		require.Error(t, err)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		// Given
		var user account.User

		// When
		err := user.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, account.ErrUserIsNotConstructed, err)
	})

	t.Run("nil_user_is_not_constructed", func(t *testing.T) {
		// Given
		var user *account.User

		// When
		err := user.Validate()

		// Then
		require.Error(t, err)
	})
}

func TestUser_Actor(t *testing.T) {
	// Given
	user, err := account.NewUser(kernel.NewUUID(), account.RoleAdmin,
		"Admin", "admin@example.com", "", "", "hash")
	require.NoError(t, err)

	// When
	actor := user.Actor()

	// Then
	require.NoError(t, actor.Validate())
	assert.True(t, actor.ID().IsEqual(user.ID()))
	assert.Equal(t, account.RoleAdmin, actor.Role())
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero_actor_is_invalid", func(t *testing.T) {
		var actor account.Actor
		require.Error(t, actor.Validate())
	})

	t.Run("actor_with_unknown_role_is_invalid", func(t *testing.T) {
		actor := account.NewActor(kernel.NewUUID(), account.RoleUnknown)
		require.Error(t, actor.Validate())
	})
}
