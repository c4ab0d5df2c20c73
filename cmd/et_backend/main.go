package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/expense_tracker/internal/adapters/advisor"
	"github.com/SscSPs/expense_tracker/internal/adapters/events"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/repositories"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Expense Tracker API
// @version 1.0
// @description Personal expense and income tracking with dashboard totals and AI advice.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repoResult, err := repositories.NewFactory(logger).Create(ctx, cfg)
	if err != nil {
		return err
	}
	defer repoResult.Cleanup()
	logger.Info("Persistence ready", slog.String("storage_mode", string(repoResult.Repos.Mode)))

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	adviceClient := advisor.New(advisor.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.AdviceBaseURL,
		Model:   cfg.AdviceModel,
		Timeout: cfg.AdviceTimeout,
	}, logger)
	if !adviceClient.Enabled() {
		logger.Warn("API_KEY not set, advice requests will return the missing-key message")
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(cfg, &repoResult.Repos, adviceClient, publisher)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := middleware.NewHTTPMetrics(registry)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		httpMetrics.Middleware(),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, registry); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		// Advice calls can take a while.
		WriteTimeout: cfg.AdviceTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// newPublisher connects to the broker when AMQP_URL is set. Without a broker,
// or when the dial fails, changes are simply not announced.
func newPublisher(cfg *config.Config, logger *slog.Logger) (portssvc.ChangePublisher, func()) {
	if cfg.AMQPURL == "" {
		return events.NoopPublisher{}, func() {}
	}
	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Error("Failed to connect change event publisher, continuing without it", slog.String("error", err.Error()))
		return events.NoopPublisher{}, func() {}
	}
	logger.Info("Publishing change events", slog.String("exchange", cfg.AMQPExchange))
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Error("Failed to close change event publisher", slog.String("error", err.Error()))
		}
	}
}
