package services

import (
	"testing"
	"time"

	"boardinghouse-http-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func TestGenerateToken_RoundTripsClaims(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken(42, "boss", RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "boss", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(SessionDuration), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService(testConfig())

	first, err := svc.GenerateToken(1, "a", RoleTenant)
	assert.NoError(t, err)
	second, err := svc.GenerateToken(1, "a", RoleTenant)
	assert.NoError(t, err)

	firstClaims, err := svc.ExtractClaims(first)
	assert.NoError(t, err)
	secondClaims, err := svc.ExtractClaims(second)
	assert.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(testConfig())
	other := NewJWTService(&config.Config{JWTSecretKey: "a-different-secret"})

	token, err := svc.GenerateToken(7, "juan", RoleTenant)
	assert.NoError(t, err)

	_, err = other.ExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(testConfig())

	_, err := svc.ExtractClaims("not-a-token")
	assert.Error(t, err)
}
