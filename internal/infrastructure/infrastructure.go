// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, metrics, store, identity) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/migrations"
	"github.com/JaimeStill/promptcraft/pkg/database"
	"github.com/JaimeStill/promptcraft/pkg/identity"
	"github.com/JaimeStill/promptcraft/pkg/lifecycle"
	"github.com/JaimeStill/promptcraft/pkg/metrics"
	"github.com/JaimeStill/promptcraft/pkg/store"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, metrics, data access, and session resolution.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Store     store.System
	Identity  identity.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := NewLogger(cfg.LogLevel)
	m := metrics.New()

	s, err := store.New(&cfg.Store, logger, database.WithMigrator(migrations.Up))
	if err != nil {
		return nil, fmt.Errorf("store init failed: %w", err)
	}

	id, err := identity.New(lc.Context(), &cfg.Identity, logger)
	if err != nil {
		return nil, fmt.Errorf("identity init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Metrics:   m,
		Store:     store.Instrument(s, m),
		Identity:  id,
	}, nil
}

// NewLogger creates the service's text logger on stderr at the named level.
func NewLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Store.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("store start failed: %w", err)
	}
	return nil
}
