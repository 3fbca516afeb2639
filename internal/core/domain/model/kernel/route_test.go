package kernel_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("creates_valid_route", func(t *testing.T) {
		// When
		route, err := kernel.NewRoute("Mumbai", "Delhi")

		// Then
		require.NoError(t, err)
		require.NoError(t, route.Validate())
		assert.Equal(t, "Mumbai", route.Origin())
		assert.Equal(t, "Delhi", route.Destination())
		assert.Equal(t, "Mumbai -> Delhi", route.String())
	})

	t.Run("rejects_empty_origin", func(t *testing.T) {
		// When
		_, err := kernel.NewRoute("", "Delhi")

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "origin")
	})

	t.Run("rejects_empty_destination", func(t *testing.T) {
		// When
		_, err := kernel.NewRoute("Mumbai", "")

		// Then
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("collects_both_errors_at_once", func(t *testing.T) {
		// When
		_, err := kernel.NewRoute("", "")

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "destination")
	})
}

func TestRoute_IsEqual(t *testing.T) {
	first, err := kernel.NewRoute("Mumbai", "Delhi")
	require.NoError(t, err)
	same, err := kernel.NewRoute("Mumbai", "Delhi")
	require.NoError(t, err)
	other, err := kernel.NewRoute("Delhi", "Mumbai")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
}

func TestRoute_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		var route kernel.Route

		// When
		err := route.Validate()

		// Then
		require.Error(t, err)
		assert.Equal(t, kernel.ErrRouteIsNotConstructed, err)
	})
}
