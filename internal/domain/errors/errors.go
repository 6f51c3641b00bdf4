package errors

import (
	"net/http"

	"budget/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional detail, never sent for 401/403/5xx
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same code, so copies made by WithMessage
// or WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Taxonomy
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource already exists",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests. Please slow down.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal Server Error",
		"",
	)
)

// Session lifecycle errors
var (
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email already exists!",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// ErrInvalidCredentials is shared by "unknown email" and "wrong password".
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusForbidden,
		"REFRESH_TOKEN_MISSING",
		"Missing refresh token.",
		"",
	)

	// ErrRefreshTokenInvalid covers forged, unknown and already-redeemed tokens alike.
	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"REFRESH_TOKEN_INVALID",
		"Invalid refresh token. Please log in again.",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusForbidden,
		"REFRESH_TOKEN_EXPIRED",
		"Refresh token expired. Please log in again.",
		"",
	)

	ErrAccessTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrAccessTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrCurrentPasswordIncorrect = NewBaseError(
		http.StatusForbidden,
		"CURRENT_PASSWORD_INCORRECT",
		"Current password is incorrect.",
		"",
	)

	ErrPasswordUnchanged = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UNCHANGED",
		"New password must be different from the current password.",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is not strong enough.",
		"",
	)

	ErrForbiddenOrigin = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN_ORIGIN",
		"Forbidden origin",
		"",
	)
)

// Ledger errors
var (
	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"Transaction not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Category does not exist or is not accessible",
		"",
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_EXISTS",
		"Category already exists",
		"",
	)
)

// Validation builds a 400 with a field-specific message.
func Validation(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message never exposes the underlying driver error.
func (e *DatabaseExecuteError) Message() string {
	return ErrInternalError.Message()
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
