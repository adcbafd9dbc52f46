package api

import (
	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	MaxBodyBytes    int64
	PublicFavorites bool
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Metrics:   infra.Metrics,
			Store:     infra.Store,
			Identity:  infra.Identity,
		},
		MaxBodyBytes:    cfg.API.MaxBodySizeBytes(),
		PublicFavorites: cfg.API.PublicFavorites,
	}
}
