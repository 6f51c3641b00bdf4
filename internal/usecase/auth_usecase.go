// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"budget/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput is the raw, untrimmed registration form.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput replaces both names.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

// ChangePasswordInput carries the current password for re-verification.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// AuthUsecase is the session lifecycle: credentials, access tokens and
// single-use refresh tokens.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login fails with the same error whether the email is unknown or the password wrong.
	Login(ctx context.Context, input LoginInput) (*entity.IssuedSession, error)

	// RefreshSession redeems a refresh token exactly once and issues a new pair.
	RefreshSession(ctx context.Context, rawRefreshToken string) (*entity.IssuedSession, error)

	// Logout is best effort and never fails because the token is unknown.
	Logout(ctx context.Context, rawRefreshToken string) error

	// Authenticate verifies an access token and returns the user ID it carries.
	Authenticate(ctx context.Context, accessToken string) (int64, error)

	GetMe(ctx context.Context, userID int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID int64, input ChangePasswordInput) error
}
