package handler

import (
	"log/slog"
	"net/http"

	"budget/config"
	"budget/internal/delivery/api/middleware"
	"budget/internal/delivery/api/response"
	"budget/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves registration, the session lifecycle and the caller's profile.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies sessionCookies
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: newSessionCookies(params.Config),
		logger:  params.Logger,
	}
}

// RegisterRequest is the POST /api/auth/register body.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"max=320"`
	Password  string `json:"password" validate:"max=128"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"max=320"`
	Password string `json:"password" validate:"max=128"`
}

// UpdateProfileRequest is the PATCH /api/auth/profile body.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
}

// ChangePasswordRequest is the POST /api/auth/change-password body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"max=128"`
	NewPassword     string `json:"newPassword" validate:"max=128"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register creates an account. It does not open a session.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		Message: "New user has been registered!",
		User:    toUserResponse(user),
	})
}

// Login opens a session and delivers both tokens as cookies only.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.set(c, session)

	return response.Message(c, http.StatusOK, "Login successful")
}

// Refresh rotates the refresh cookie. Any failure also clears it.
func (h *AuthHandler) Refresh(c echo.Context) error {
	session, err := h.authUC.RefreshSession(c.Request().Context(), refreshTokenFrom(c))
	if err != nil {
		h.cookies.clearRefresh(c)

		return response.HandleAppError(c, err)
	}

	h.cookies.set(c, session)

	return response.Success(c, http.StatusOK, refreshResponse{AccessToken: session.AccessToken})
}

// Logout always succeeds and clears both cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context(), refreshTokenFrom(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.clearAll(c)

	return response.Message(c, http.StatusOK, "Logged out.")
}

// Me returns the authenticated caller.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	user, err := h.authUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile overwrites the caller's first and last name.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ChangePassword verifies the current password before replacing it.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.authUC.ChangePassword(c.Request().Context(), userID, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password changed successfully.")
}
