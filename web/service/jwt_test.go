package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("HAMLOG_JWT_SECRET", "test-secret")
	var s JWTService

	token, err := s.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userId, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userId)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	t.Setenv("HAMLOG_JWT_SECRET", "test-secret")
	var s JWTService

	token, err := s.GenerateToken(42)
	require.NoError(t, err)

	_, err = s.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("HAMLOG_JWT_SECRET", "first-secret")
	var s JWTService

	token, err := s.GenerateToken(7)
	require.NoError(t, err)

	t.Setenv("HAMLOG_JWT_SECRET", "second-secret")
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
