// Package errors provides custom error types for the SpendWise API.
// All store- and service-layer errors should use AppError to ensure
// consistent, secure error responses that never leak internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Entity errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrBudgetGoalNotFound  = &AppError{Code: "BUDGET_GOAL_NOT_FOUND", Message: "Budget goal not found", StatusCode: http.StatusNotFound}
)

// Persistence errors. A failed snapshot write never rolls back the in-memory
// state; it is reported so the user knows the last change may not be durable.
var (
	ErrSnapshotLoad = &AppError{Code: "SNAPSHOT_LOAD_FAILED", Message: "Could not load saved application state", StatusCode: http.StatusInternalServerError}
	ErrSnapshotSave = &AppError{Code: "SNAPSHOT_SAVE_FAILED", Message: "Could not save application state", StatusCode: http.StatusInternalServerError}
)

// Forecast errors. Both are transient from the user's point of view and
// retryable; the forecast path never touches AppState.
var (
	ErrForecastUnavailable   = &AppError{Code: "FORECAST_UNAVAILABLE", Message: "Spending forecast is temporarily unavailable, please try again", StatusCode: http.StatusBadGateway}
	ErrForecastNotConfigured = &AppError{Code: "FORECAST_NOT_CONFIGURED", Message: "Spending forecast is not configured", StatusCode: http.StatusServiceUnavailable}
)
