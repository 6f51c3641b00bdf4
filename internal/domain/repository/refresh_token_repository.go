package repository

import (
	"context"
	"time"

	"budget/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no row matches the token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists hashed single-use refresh tokens.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash returns the row regardless of expiry; callers decide what expiry means.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes the row and returns ErrRefreshTokenNotFound when nothing
	// was deleted. Of two concurrent calls with the same hash exactly one succeeds.
	DeleteByHash(ctx context.Context, tokenHash string) error

	DeleteByUserID(ctx context.Context, userID int64) (int64, error)

	// DeleteExpired removes every row with expires_at <= now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
