package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/logger"
)

// ErrorHandler returns a Gin middleware that turns the last error recorded on
// the context into a JSON error response, unless a handler already wrote one.
// Errors that are not AppErrors are logged and reported as INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := requestLogger(c)

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			log.Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{"code": appErr.Code, "message": appErr.Message},
		})
	}
}

// requestLogger returns the logger for c, tagged with the session and
// request ids when they are known.
func requestLogger(c *gin.Context) *zap.SugaredLogger {
	log := logger.Get()
	if sessionID, ok := SessionID(c); ok {
		log = logger.ForSession(sessionID)
	}
	if requestID := c.GetString(requestIDKey); requestID != "" {
		log = log.With("request_id", requestID)
	}
	return log
}
