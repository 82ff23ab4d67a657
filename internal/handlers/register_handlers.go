package handlers

import (
	"github.com/SscSPs/videotube_backend/cmd/docs"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// credentialLimiter may be nil to disable rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	credentialLimiter *limiter.Limiter,
) {
	r.GET("/health", healthCheck)

	setupAPIV1Routes(r, cfg, services, credentialLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	credentialLimiter *limiter.Limiter,
) {
	users := r.Group("/api/v1/users", middleware.ErrorHandler())

	requireAuth := middleware.RequireAuth(services.Session)
	var rateLimit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if credentialLimiter != nil {
		rateLimit = middleware.RateLimit(credentialLimiter)
	}

	registerAuthRoutes(users, cfg, services, requireAuth, rateLimit)
	registerUserRoutes(users, services.User, requireAuth)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
