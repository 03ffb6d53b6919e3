package auth

import (
	"testing"
	"time"

	"github.com/interntrack/server/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func studentUser() *models.User {
	roll := "21CS045"
	return &models.User{
		ID:   7,
		Name: "John Doe",
		Roll: &roll,
		Role: models.RoleStudent,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(studentUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "21CS045", claims.Identifier)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(studentUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenTampered(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, _, err := svc.GenerateToken(studentUser())
	require.NoError(t, err)

	// Flip a character in the signature
	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateToken(studentUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ValidateAndExtractClaims(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	// A bare token is accepted as-is
	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
