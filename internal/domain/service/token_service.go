package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access token payload.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies the two session credentials.
// Access tokens are stateless signed JWTs; refresh tokens are opaque random
// secrets whose hash is stored server-side.
type TokenService interface {
	GenerateAccessToken(userID int64) (string, error)

	// ValidateAccessToken checks signature, expiry, issuer and audience only.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GenerateRefreshToken returns a raw secret and the hash to persist.
	GenerateRefreshToken() (raw string, hash string, err error)

	HashToken(raw string) string

	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
