package middleware

import (
	"log/slog"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the request with c.Error.
// It is the only place errors are translated to HTTP responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		kind := apperrors.KindOf(err)
		status := kind.HTTPStatus()

		logger := GetLoggerFromCtx(c.Request.Context())
		if kind == apperrors.KindInternal {
			logger.Error("Request failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("kind", kind.String()), slog.String("error", err.Error()))
		}

		c.JSON(status, dto.NewErrorResponse(status, apperrors.MessageOf(err)))
	}
}

// AbortWithError records err for ErrorHandler and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
