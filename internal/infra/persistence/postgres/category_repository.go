package postgres

import (
	"context"

	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const visibleCategoryScope = "user_id IS NULL OR user_id = ?"

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ListVisible returns the global categories followed by the user's own, each group sorted by name.
func (repo *categoryRepository) ListVisible(ctx context.Context, userID int64) ([]*entity.Category, error) {
	var rows []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where(visibleCategoryScope, userID).
		Order("CASE WHEN user_id IS NULL THEN 0 ELSE 1 END, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toCategoryDomain(row))
	}

	return categories, nil
}

// FindVisible loads a category the user may attach to a transaction: a global one or their own.
func (repo *categoryRepository) FindVisible(ctx context.Context, userID, categoryID int64) (*entity.Category, error) {
	var row model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", categoryID).
		Where(visibleCategoryScope, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&row), nil
}

// ExistsByName reports whether a category with this name (case-insensitive) is already
// visible to the user, either as a global or as one of theirs.
func (repo *categoryRepository) ExistsByName(ctx context.Context, userID int64, name string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("LOWER(name) = LOWER(?)", name).
		Where(visibleCategoryScope, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check category name")
	}

	return count > 0, nil
}

// Create inserts a user-owned category. A name clash with the unique index maps to
// repository.ErrCategoryExists.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	row := &model.CategoryModel{
		UserID: category.UserID,
		Name:   category.Name,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCategoryExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = row.ID
	category.CreatedAt = row.CreatedAt

	return nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
