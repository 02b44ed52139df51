package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/logger"
	"cashflow/internal/middleware"
	"cashflow/internal/uuid"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getSessionID extracts the authenticated session ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getSessionID(c *gin.Context) (string, error) {
	id, ok := middleware.SessionID(c)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathIndex parses a non-negative integer path parameter.
func parsePathIndex(c *gin.Context, param string) (int, error) {
	n, err := strconv.Atoi(c.Param(param))
	if err != nil || n < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return n, nil
}

// parsePathUUID reads a UUID path parameter.
func parsePathUUID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.Valid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// bindOptionalJSON binds the request body into obj, treating an empty body as no input.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
