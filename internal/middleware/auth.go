package middleware

import (
	"log/slog"
	"strings"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the name of the cookie carrying the access token.
const AccessTokenCookie = "accessToken"

// RequireAuth creates a Gin middleware handler that verifies the access token and
// attaches the resulting identity for WithUser. The accessToken cookie takes
// precedence over the Authorization header.
func RequireAuth(authenticator portssvc.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token := extractAccessToken(c)
		if token == "" {
			logger.Warn("Access token missing")
			AbortWithError(c, apperrors.NewUnauthorized("Unauthorized request", nil))
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enrichedLogger))
		c.Set(string(userKey), *user)

		c.Next()
	}
}

func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
