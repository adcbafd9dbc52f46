// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/internal/infrastructure"
	"github.com/JaimeStill/promptcraft/pkg/middleware"
	"github.com/JaimeStill/promptcraft/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Every request passes through session resolution so handlers can read the
// signed-in user from the request context.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(runtime.Metrics.Middleware("api"))
	m.Use(runtime.Identity.Middleware())

	return m, nil
}
