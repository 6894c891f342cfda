package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)

	s, err := NewJWTService("segredo", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultExpiration, s.expiration)
}

func TestGenerateAndValidateToken(t *testing.T) {
	s, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)

	token, err := s.GenerateToken("ana", "Padaria Pão Quente")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.UserID)
	assert.Equal(t, "Padaria Pão Quente", claims.TenantID)
	assert.Equal(t, issuer, claims.Issuer)

	_, err = s.GenerateToken("ana", "")
	assert.ErrorIs(t, err, ErrMissingTenant)
}

func TestValidateToken_Invalid(t *testing.T) {
	s, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)
	other, err := NewJWTService("outro-segredo", time.Hour)
	require.NoError(t, err)

	token, err := other.GenerateToken("ana", "Padaria")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenCanBeRefreshed(t *testing.T) {
	s, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	s.now = func() time.Time { return issued }
	token, err := s.GenerateToken("ana", "Padaria")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	refreshed, err := s.RefreshToken(token)
	require.NoError(t, err)

	claims, err := s.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "Padaria", claims.TenantID)
}
