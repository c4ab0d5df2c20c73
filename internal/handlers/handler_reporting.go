package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// RegisterReportingRoutes registers the dashboard routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getDashboardStats)
		dashboard.GET("/expenses-by-category", h.getExpensesByCategory)
	}
}

// getDashboardStats godoc
// @Summary Dashboard totals
// @Description Total expenses, current-month expenses and income, and all-time balance.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	stats := h.reportingService.GetDashboardStats(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// getExpensesByCategory godoc
// @Summary Expenses per category
// @Description Expense totals per category, largest first.
// @Tags dashboard
// @Produce  json
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /dashboard/expenses-by-category [get]
func (h *reportingHandler) getExpensesByCategory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	totals := h.reportingService.GetExpensesByCategory(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.ToListCategoryTotalResponse(totals))
}

type adviceHandler struct {
	adviceService portssvc.AdviceSvcFacade
}

// RegisterAdviceRoutes registers the advice route behind the given extra middlewares.
func RegisterAdviceRoutes(rg *gin.RouterGroup, adviceService portssvc.AdviceSvcFacade, extra ...gin.HandlerFunc) {
	h := &adviceHandler{adviceService: adviceService}
	chain := append(extra, h.getAdvice)
	rg.POST("/advice", chain...)
}

// getAdvice godoc
// @Summary Financial advice
// @Description Asks the language model for three short tips based on the latest transactions. Failures return a fallback message with status 200.
// @Tags advice
// @Produce  json
// @Success 200 {object} dto.AdviceResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Security BearerAuth
// @Router /advice [post]
func (h *adviceHandler) getAdvice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.AdviceResponse{Advice: h.adviceService.GetAdvice(c.Request.Context(), userID)})
}
