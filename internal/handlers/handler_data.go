package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dataHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
	dataService      portssvc.DataSvcFacade
}

// RegisterDataRoutes registers the workspace load and data reset routes.
func RegisterDataRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvcFacade, dataService portssvc.DataSvcFacade) {
	h := &dataHandler{workspaceService: workspaceService, dataService: dataService}

	rg.GET("/workspace", h.getWorkspace)
	rg.DELETE("/data", h.resetData)
}

// getWorkspace godoc
// @Summary Load the workspace
// @Description Transactions, categories, subcategories and dashboard totals in one response.
// @Tags data
// @Produce json
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspace [get]
func (h *dataHandler) getWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ws, err := h.workspaceService.LoadWorkspace(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load workspace", "Failed to load workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

// resetData godoc
// @Summary Reset all data
// @Description Removes every transaction, category and subcategory of the user. Categories read as defaults afterwards.
// @Tags data
// @Produce json
// @Success 200 {object} dto.DeleteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} dto.DeleteResponse
// @Security BearerAuth
// @Router /data [delete]
func (h *dataHandler) resetData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.dataService.ResetData(c.Request.Context(), userID)
	respondDelete(c, logger, "", err, "Failed to reset data")
}
