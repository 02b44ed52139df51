// Package errors provides custom error types for the Cashflow Steps API.
// Engine and service errors use AppError so that handlers can return
// consistent error responses without leaking internal details to clients.
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

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrInsufficientFunds) matches wrapped and re-messaged copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

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

// Session errors.
var (
	ErrUnauthorized    = &AppError{Code: "UNAUTHORIZED", Message: "A valid session token is required", StatusCode: http.StatusUnauthorized}
	ErrSessionNotFound = &AppError{Code: "SESSION_NOT_FOUND", Message: "Game session not found", StatusCode: http.StatusNotFound}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Catalog errors.
var (
	ErrRoleNotFound   = &AppError{Code: "ROLE_NOT_FOUND", Message: "Role not found", StatusCode: http.StatusNotFound}
	ErrInvalidCatalog = &AppError{Code: "INVALID_CATALOG", Message: "Catalog data is malformed", StatusCode: http.StatusUnprocessableEntity}
)

// Game errors.
var (
	ErrInsufficientFunds = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "Not enough cash for the down payment", StatusCode: http.StatusBadRequest}
	ErrEmptyDeck         = &AppError{Code: "EMPTY_DECK", Message: "Cannot draw from an empty deck", StatusCode: http.StatusConflict}
	ErrInvalidPhase      = &AppError{Code: "INVALID_PHASE", Message: "Operation is not allowed in the current phase", StatusCode: http.StatusConflict}
	ErrNotInMonth        = &AppError{Code: "NOT_IN_MONTH", Message: "No month is in progress", StatusCode: http.StatusConflict}
	ErrOfferNotOffered   = &AppError{Code: "OFFER_NOT_OFFERED", Message: "Offer is not among this month's candidates", StatusCode: http.StatusBadRequest}
	ErrGameOver          = &AppError{Code: "GAME_OVER", Message: "The game has already been won", StatusCode: http.StatusConflict}
)

// Save errors.
var (
	ErrMalformedSave = &AppError{Code: "MALFORMED_SAVE", Message: "Save data is malformed", StatusCode: http.StatusBadRequest}
	ErrSaveNotFound  = &AppError{Code: "SAVE_NOT_FOUND", Message: "Save slot not found", StatusCode: http.StatusNotFound}
)
