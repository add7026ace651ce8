package auth

import (
	"testing"
	"time"

	"github.com/celengan/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:   "test-secret-key-at-least-32-chars-long",
		Issuer:   "celengan-auth",
		Audience: "celengan-api",
	})
}

func TestJWTService_ValidateRoundTrip(t *testing.T) {
	svc := newTestService()
	profileID := uuid.New()

	token, err := svc.MintToken(profileID, "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, profileID, identity.ProfileID)
	assert.Equal(t, "user@example.com", identity.Email)
}

func TestJWTService_ValidateExpired(t *testing.T) {
	svc := newTestService()

	token, err := svc.MintToken(uuid.New(), "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateMalformed(t *testing.T) {
	svc := newTestService()

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(config.JWTConfig{
		Secret:   "a-completely-different-secret-value!!",
		Issuer:   "celengan-auth",
		Audience: "celengan-api",
	})

	token, err := other.MintToken(uuid.New(), "user@example.com", time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateWrongIssuer(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(config.JWTConfig{
		Secret:   "test-secret-key-at-least-32-chars-long",
		Issuer:   "someone-else",
		Audience: "celengan-api",
	})

	token, err := other.MintToken(uuid.New(), "user@example.com", time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateNonUUIDSubject(t *testing.T) {
	svc := newTestService()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			Issuer:    "celengan-auth",
			Audience:  jwt.ClaimStrings{"celengan-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-at-least-32-chars-long"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
