package handlers

import (
	"net/http"

	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// healthCheck godoc
// @Summary Show the status of server.
// @Description Liveness check.
// @Tags root
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, gin.H{"status": "ok"}, "OK"))
}
