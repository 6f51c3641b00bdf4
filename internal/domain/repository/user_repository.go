// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"budget/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the case-insensitive email index rejects an insert.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts the user and fills ID, CreatedAt and UpdatedAt.
	// Returns ErrEmailTaken on a unique violation.
	Create(ctx context.Context, user *entity.User) error

	// UpdateName overwrites first and last name and returns the fresh row.
	UpdateName(ctx context.Context, id int64, firstName, lastName string) (*entity.User, error)

	// UpdatePasswordHash overwrites the stored hash.
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}
