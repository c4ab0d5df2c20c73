package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles username session requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// RegisterAuthRoutes sets up the public authentication routes. The extra
// middlewares (rate limiting) run before each of them.
func RegisterAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, extra ...gin.HandlerFunc) {
	h := NewAuthHandler(authService)

	auth := rg.Group("/auth", extra...)
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}

// RegisterSessionRoutes sets up the authenticated session route.
func RegisterSessionRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)
	rg.GET("/session", h.GetSession)
}

// Login godoc
// @Summary Open a session
// @Description Issues a token for the given username. No password is involved.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Username"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Login failed", "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Close the session
// @Description Forgets the last recorded username. Tokens expire on their own.
// @Tags auth
// @Produce json
// @Success 204
// @Failure 502 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		respondServiceError(c, logger, err, "Logout failed", "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSession godoc
// @Summary Current session
// @Description Username from the token, the active storage mode, whether advice is enabled and the last recorded username.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, h.authService.GetSession(c.Request.Context(), userID))
}
