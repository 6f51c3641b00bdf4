package repository

import (
	"context"
	"errors"

	"budget/internal/domain/entity"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// CategoryRepository persists global and per-user categories.
type CategoryRepository interface {
	// ListVisible returns global categories first, then the user's own, each ordered by name.
	ListVisible(ctx context.Context, userID int64) ([]*entity.Category, error)

	// FindVisible returns the category only when it is global or owned by userID.
	FindVisible(ctx context.Context, userID, categoryID int64) (*entity.Category, error)

	// ExistsByName matches case-insensitively among globals and the user's own categories.
	ExistsByName(ctx context.Context, userID int64, name string) (bool, error)

	// Create returns ErrCategoryExists on a unique violation.
	Create(ctx context.Context, category *entity.Category) error
}
