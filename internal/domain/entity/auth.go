package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one outstanding, single-use refresh credential.
// Only the hash of the raw secret is ever persisted.
type RefreshToken struct {
	ID        uuid.UUID // Opaque row identity.
	UserID    int64     // Owner of the session.
	TokenHash string    // SHA-256 (base64url) of the raw secret delivered in the cookie.
	ExpiresAt time.Time // Server-side expiry; a row at or past this instant is dead.
	CreatedAt time.Time // When the token was issued (login or rotation).
}

// IsExpired reports whether the token can no longer be redeemed at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// IssuedSession is what the client receives after login or rotation.
type IssuedSession struct {
	UserID          int64
	AccessToken     string
	RefreshToken    string // raw secret, only ever held in memory and in the cookie
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}
