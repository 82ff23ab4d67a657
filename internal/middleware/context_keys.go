package middleware

import (
	"log/slog"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userKey is the key under which RequireAuth stores the verified identity.
const userKey = contextKey("user")

// UserHandlerFunc is a handler that receives the verified identity as an argument.
type UserHandlerFunc func(c *gin.Context, user domain.PublicUser)

// WithUser adapts a UserHandlerFunc to a gin.HandlerFunc. It must be mounted behind
// RequireAuth; without a verified identity the request is rejected as unauthorized.
func WithUser(fn UserHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(string(userKey))
		user, ok := val.(domain.PublicUser)
		if !exists || !ok {
			GetLoggerFromCtx(c.Request.Context()).Error("Handler requires an authenticated user but none was attached",
				slog.String("path", c.FullPath()))
			AbortWithError(c, apperrors.NewUnauthorized("Unauthorized request", nil))
			return
		}
		fn(c, user)
	}
}
