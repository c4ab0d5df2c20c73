// Package repositories selects and builds the persistence backend once at startup.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/expense_tracker/internal/repositories/localstore"
	"github.com/SscSPs/expense_tracker/pkg/database"
)

// Result is a ready repository provider plus the function that releases it.
type Result struct {
	Repos   portsrepo.RepositoryProvider
	Cleanup func()
}

// ModeFor returns the storage mode implied by the configuration.
func ModeFor(cfg *config.Config) domain.StorageMode {
	if cfg.RemoteEnabled() {
		return domain.RemoteMode
	}
	return domain.LocalMode
}

// Factory builds repository providers.
type Factory struct {
	logger *slog.Logger
}

// NewFactory creates a new repository factory
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the provider for the configured mode.
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (*Result, error) {
	switch mode := ModeFor(cfg); mode {
	case domain.RemoteMode:
		return f.createRemote(ctx, cfg)
	case domain.LocalMode:
		return f.createLocal(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", mode)
	}
}

func (f *Factory) createRemote(ctx context.Context, cfg *config.Config) (*Result, error) {
	poolConfig, err := database.ParsePoolConfig(cfg.BackendURL, cfg.BackendKey)
	if err != nil {
		return nil, err
	}

	applied, err := pgsql.RunMigrations(poolConfig.ConnConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate remote backend: %w", err)
	}
	if applied {
		f.logger.Info("Database migrations applied successfully.")
	} else {
		f.logger.Info("No new migrations to apply.")
	}

	pool, err := database.NewPgxPool(ctx, poolConfig, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)
	repos.SessionRepo = newMemorySessionRepository()

	f.logger.Info("Initialized remote backend", slog.String("host", poolConfig.ConnConfig.Host))
	return &Result{
		Repos:   repos,
		Cleanup: func() { database.ClosePgxPool(pool) },
	}, nil
}

func (f *Factory) createLocal(cfg *config.Config) (*Result, error) {
	store, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}

	f.logger.Info("Initialized local backend", slog.String("db_path", cfg.LocalStorePath))
	return &Result{
		Repos: localstore.NewRepositoryProvider(store),
		Cleanup: func() {
			if err := store.Close(); err != nil {
				f.logger.Error("Error closing local store", slog.String("error", err.Error()))
			}
		},
	}, nil
}
