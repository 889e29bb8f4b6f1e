package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkta/athletereg/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "athletereg-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	admin := &models.Admin{ID: 7, Email: "admin@jkta.in"}

	token, expiresIn, err := svc.GenerateToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
	assert.Equal(t, "admin@jkta.in", claims.Email)
	assert.Equal(t, "athletereg-test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	admin := &models.Admin{ID: 1, Email: "admin@jkta.in"}

	token, _, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "athletereg-test",
	})
	_, err = other.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)
	admin := &models.Admin{ID: 1, Email: "admin@jkta.in"}

	token, _, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateEmptyToken(t *testing.T) {
	svc := newTestService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
