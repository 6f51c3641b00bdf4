package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"budget/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.ApplyDefaults()

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "budget-overflow.api", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"budget-overflow.client"}, claims.Audience)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken(7)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignatureAndAudience(t *testing.T) {
	svc := newTestJWTService(t)

	other := newTestTokenConfig()
	other.SecretKey.Access = "another_secret_entirely_for_the_test"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	forged, err := otherSvc.GenerateAccessToken(1)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(forged)
	assert.Error(t, err)

	wrongAudience := newTestTokenConfig()
	wrongAudience.Auth.Audience = "someone-else"
	wrongSvc, err := NewJWTService(wrongAudience)
	require.NoError(t, err)

	token, err := wrongSvc.GenerateAccessToken(1)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1", "userId": 1, "iss": svc.issuer, "aud": svc.audience,
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_GenerateRefreshToken(t *testing.T) {
	svc := newTestJWTService(t)

	raw, hash, err := svc.GenerateRefreshToken()
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err)
	assert.Len(t, decoded, 48)
	assert.Equal(t, svc.HashToken(raw), hash)
	assert.NotEqual(t, raw, hash)

	raw2, hash2, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.SecretKey.Access = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_Durations(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}
