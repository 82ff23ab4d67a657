package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, logout, token refresh, password changes and registration.
type authHandler struct {
	sessionService portssvc.SessionSvcFacade
	userService    portssvc.UserSvcFacade
	cfg            *config.Config
}

func newAuthHandler(ss portssvc.SessionSvcFacade, us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		sessionService: ss,
		userService:    us,
		cfg:            cfg,
	}
}

// registerAuthRoutes sets up the session routes. rateLimit guards the credential endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, requireAuth gin.HandlerFunc, rateLimit gin.HandlerFunc) {
	h := newAuthHandler(services.Session, services.User, cfg)

	rg.POST("/register", h.register)
	rg.POST("/login", rateLimit, h.login)
	rg.POST("/refresh-token", rateLimit, h.refreshToken)
	rg.POST("/logout", requireAuth, middleware.WithUser(h.logout))
	rg.POST("/change-password", requireAuth, middleware.WithUser(h.changePassword))
}

// register godoc
// @Summary Register a new user
// @Description Creates a new account. Avatar and cover image are URLs of already hosted images.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "User Registration Info"
// @Success 201 {object} dto.APIResponse{data=domain.PublicUser}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Username or email already exists"
// @Failure 500 {object} dto.APIResponse
// @Router /users/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, user, "User registered successfully"))
}

// login godoc
// @Summary User login
// @Description Authenticates by username or email and starts a new session. Any previous session of the user is ended.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 404 {object} dto.APIResponse "User does not exist"
// @Failure 429 {object} dto.APIResponse
// @Router /users/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	result, err := h.sessionService.Login(c.Request.Context(), req.LoginKey(), req.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	setAuthCookies(c, h.cfg, &result.Tokens)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, dto.ToLoginResponse(result), "User logged in successfully"))
}

// logout godoc
// @Summary User logout
// @Description Ends the caller's session and clears both token cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *authHandler) logout(c *gin.Context, user domain.PublicUser) {
	if err := h.sessionService.Logout(c.Request.Context(), user.UserID); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	clearAuthCookies(c, h.cfg)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, gin.H{}, "User logged out"))
}

// refreshToken godoc
// @Summary Refresh the session
// @Description Exchanges the current refresh token (cookie or body) for a new token pair. Each refresh token can be used once.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token for clients without cookies"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 429 {object} dto.APIResponse
// @Router /users/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	presented, err := c.Cookie(refreshTokenCookie)
	if err != nil || presented == "" {
		var req dto.RefreshTokenRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Debug("No refresh token in body", slog.String("error", bindErr.Error()))
		}
		presented = req.RefreshToken
	}

	pair, err := h.sessionService.RefreshSession(c.Request.Context(), presented)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	setAuthCookies(c, h.cfg, pair)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, dto.ToRefreshTokenResponse(pair), "Access token refreshed"))
}

// changePassword godoc
// @Summary Change password
// @Description Replaces the caller's password after verifying the old one. Existing sessions stay valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Invalid old password"
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/change-password [post]
func (h *authHandler) changePassword(c *gin.Context, user domain.PublicUser) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	if err := h.sessionService.ChangePassword(c.Request.Context(), user.UserID, req.OldPassword, req.NewPassword); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, gin.H{}, "Password changed successfully"))
}
