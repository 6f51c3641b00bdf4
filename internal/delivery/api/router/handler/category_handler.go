package handler

import (
	"log/slog"
	"net/http"

	"budget/internal/delivery/api/middleware"
	"budget/internal/delivery/api/response"
	"budget/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves global and per-user categories.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest is the POST /api/categories body.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"max=200"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	categories, err := h.categoryUC.ListCategories(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, toCategoryResponse(category))
	}

	return response.Success(c, http.StatusOK, response.DataBody{
		Message: "Categories fetched successfully",
		Data:    data,
	})
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), userID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.DataBody{
		Message: "Category created successfully.",
		Data:    toCategoryResponse(category),
	})
}
