package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	s := NewJWTTokenService("test-secret-at-least-32-bytes-long!", time.Hour, "expense-vault")

	token, expiresAt, err := s.Generate("operator")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
}

func TestJWTTokenService_RejectsWrongSecret(t *testing.T) {
	a := NewJWTTokenService("secret-a-0000000000000000000000000", time.Hour, "expense-vault")
	b := NewJWTTokenService("secret-b-0000000000000000000000000", time.Hour, "expense-vault")

	token, _, err := a.Generate("operator")
	require.NoError(t, err)

	_, err = b.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsExpired(t *testing.T) {
	s := NewJWTTokenService("test-secret-at-least-32-bytes-long!", -time.Minute, "expense-vault")

	token, _, err := s.Generate("operator")
	require.NoError(t, err)

	_, err = s.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_RejectsGarbage(t *testing.T) {
	s := NewJWTTokenService("test-secret-at-least-32-bytes-long!", time.Hour, "expense-vault")

	_, err := s.Validate("not.a.jwt")
	assert.Error(t, err)
}
