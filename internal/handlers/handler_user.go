package handlers

import (
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests about the caller's own account.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers the account routes. All of them require authentication.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, requireAuth gin.HandlerFunc) {
	h := newUserHandler(userService)

	rg.GET("/current-user", requireAuth, middleware.WithUser(h.getCurrentUser))
	rg.PATCH("/update-account", requireAuth, middleware.WithUser(h.updateAccount))
	rg.PATCH("/update-avatar", requireAuth, middleware.WithUser(h.updateAvatar))
}

// getCurrentUser godoc
// @Summary Get current user
// @Description Returns the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=domain.PublicUser}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/current-user [get]
func (h *userHandler) getCurrentUser(c *gin.Context, user domain.PublicUser) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, user, "User fetched successfully"))
}

// updateAccount godoc
// @Summary Update account details
// @Description Updates the full name and/or email of the authenticated user.
// @Tags users
// @Accept json
// @Produce json
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=domain.PublicUser}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Email already in use"
// @Security BearerAuth
// @Router /users/update-account [patch]
func (h *userHandler) updateAccount(c *gin.Context, user domain.PublicUser) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	updated, err := h.userService.UpdateAccountDetails(c.Request.Context(), user.UserID, req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, updated, "Account details updated successfully"))
}

// updateAvatar godoc
// @Summary Update avatar
// @Description Points the authenticated user's avatar at an already hosted image URL.
// @Tags users
// @Accept json
// @Produce json
// @Param avatar body dto.UpdateAvatarRequest true "Avatar URL"
// @Success 200 {object} dto.APIResponse{data=domain.PublicUser}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/update-avatar [patch]
func (h *userHandler) updateAvatar(c *gin.Context, user domain.PublicUser) {
	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	updated, err := h.userService.UpdateAvatar(c.Request.Context(), user.UserID, req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, updated, "Avatar updated"))
}
