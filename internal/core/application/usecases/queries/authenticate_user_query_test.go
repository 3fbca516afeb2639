package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/pkg/errs"
)

func TestNewAuthenticateUserQuery_ValidInput(t *testing.T) {
	query, err := queries.NewAuthenticateUserQuery("priya@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", query.Email())
	assert.Equal(t, "s3cret-pass", query.Password())
	require.NoError(t, query.Validate())
}

func TestNewAuthenticateUserQuery_MissingFields(t *testing.T) {
	_, err := queries.NewAuthenticateUserQuery("", "s3cret-pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewAuthenticateUserQuery("priya@example.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
