package handlers

import (
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const refreshTokenCookie = "refreshToken"

// setAuthCookies stores both tokens as httpOnly cookies that expire with the tokens.
func setAuthCookies(c *gin.Context, cfg *config.Config, pair *domain.TokenPair) {
	applySameSite(c, cfg)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken,
		int(cfg.AccessTokenExpiryDuration.Seconds()), "/", cfg.CookieDomain, cfg.CookieSecure, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken,
		int(cfg.RefreshTokenExpiryDuration.Seconds()), "/", cfg.CookieDomain, cfg.CookieSecure, true)
}

func clearAuthCookies(c *gin.Context, cfg *config.Config) {
	applySameSite(c, cfg)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", cfg.CookieDomain, cfg.CookieSecure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", cfg.CookieDomain, cfg.CookieSecure, true)
}

// applySameSite allows cross-site cookies only when they are secure.
func applySameSite(c *gin.Context, cfg *config.Config) {
	if cfg.CookieSecure {
		c.SetSameSite(http.SameSiteNoneMode)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
}
