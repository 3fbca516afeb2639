package account_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected account.Role
	}{
		{name: "admin", input: "admin", expected: account.RoleAdmin},
		{name: "delivery_agent", input: "delivery_agent", expected: account.RoleDeliveryAgent},
		{name: "customer", input: "customer", expected: account.RoleCustomer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := account.RoleFromString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
			assert.Equal(t, tc.input, role.String())
		})
	}

	t.Run("rejects_unknown_name", func(t *testing.T) {
		_, err := account.RoleFromString("superuser")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		err := account.RoleUnknown.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("valid_roles_pass", func(t *testing.T) {
		require.NoError(t, account.RoleAdmin.Validate())
		require.NoError(t, account.RoleDeliveryAgent.Validate())
		require.NoError(t, account.RoleCustomer.Validate())
	})
}

func TestRole_Permissions(t *testing.T) {
	t.Run("only_admin_and_agent_transition_orders", func(t *testing.T) {
		assert.True(t, account.RoleAdmin.CanTransitionOrders())
		assert.True(t, account.RoleDeliveryAgent.CanTransitionOrders())
		assert.False(t, account.RoleCustomer.CanTransitionOrders())
		assert.False(t, account.RoleUnknown.CanTransitionOrders())
	})

	t.Run("only_admin_assigns_agents", func(t *testing.T) {
		assert.True(t, account.RoleAdmin.CanAssignAgents())
		assert.False(t, account.RoleDeliveryAgent.CanAssignAgents())
		assert.False(t, account.RoleCustomer.CanAssignAgents())
	})
}
