package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContainer() (*portssvc.ServiceContainer, *MockAuthService) {
	auth := new(MockAuthService)
	return &portssvc.ServiceContainer{
		Transaction: new(MockTransactionService),
		Category:    new(MockCategoryService),
		Subcategory: new(MockSubcategoryService),
		Reporting:   new(MockReportingService),
		Advice:      new(MockAdviceService),
		Auth:        auth,
		Workspace:   new(MockWorkspaceService),
		Data:        new(MockDataService),
	}, auth
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:       testJWTSecret,
		LoginRateLimit:  "2-M",
		AdviceRateLimit: "5-M",
	}
}

func TestRegisterRoutes_PublicEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	container, _ := newTestContainer()
	require.NoError(t, handlers.RegisterRoutes(r, newTestConfig(), container, prometheus.NewRegistry()))

	for _, path := range []string{"/health", "/metrics", "/swagger/index.html"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRegisterRoutes_NoSwaggerInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := newTestConfig()
	cfg.IsProduction = true
	container, _ := newTestContainer()
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container, prometheus.NewRegistry()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterRoutes_ProtectedRoutesNeedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	container, _ := newTestContainer()
	require.NoError(t, handlers.RegisterRoutes(r, newTestConfig(), container, prometheus.NewRegistry()))

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/session"},
		{http.MethodGet, "/api/v1/workspace"},
		{http.MethodGet, "/api/v1/transactions"},
		{http.MethodDelete, "/api/v1/categories/c1"},
		{http.MethodPost, "/api/v1/advice"},
		{http.MethodDelete, "/api/v1/data"},
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(route.method, route.path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestRegisterRoutes_LoginIsRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	container, auth := newTestContainer()
	require.NoError(t, handlers.RegisterRoutes(r, newTestConfig(), container, prometheus.NewRegistry()))
	auth.On("Login", mock.Anything, dto.LoginRequest{Username: "maria"}).
		Return(&dto.LoginResponse{Token: "tok", Username: "maria"}, nil).Twice()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"username":"maria"}`)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	auth.AssertExpectations(t)
}

func TestRegisterRoutes_BadRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := newTestConfig()
	cfg.LoginRateLimit = "lots"
	container, _ := newTestContainer()

	err := handlers.RegisterRoutes(gin.New(), cfg, container, prometheus.NewRegistry())

	assert.ErrorContains(t, err, "login rate limit")
}
