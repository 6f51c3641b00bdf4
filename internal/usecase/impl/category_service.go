package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "budget/internal/delivery/context"
	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/repository"
	"budget/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const categoryNameMaxLength = 50

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) ListCategories(ctx context.Context, userID int64) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListVisible(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, userID int64, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.Validation("Name is required.")
	}
	if utf8.RuneCountInString(name) > categoryNameMaxLength {
		return nil, domainerrors.Validation("Name must be at most 50 characters.")
	}

	exists, err := srv.categoryRepo.ExistsByName(ctx, userID, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check category name")
	}
	if exists {
		return nil, domainerrors.ErrCategoryAlreadyExists
	}

	category := &entity.Category{UserID: userRef(userID), Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryExists) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Category created",
		slog.Int64("category_id", category.ID),
	)

	return category, nil
}
