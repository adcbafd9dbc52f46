package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/promptcraft/internal/api"
	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/internal/infrastructure"
	"github.com/JaimeStill/promptcraft/pkg/module"
	"github.com/JaimeStill/promptcraft/web/app"
)

// Modules holds the API module and the page handler that serves every other path.
type Modules struct {
	API   *module.Module
	Pages http.Handler
}

// NewModules creates the API module and page handler.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	pages, err := app.NewHandler(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:   apiModule,
		Pages: pages,
	}, nil
}

// Mount registers the API module and routes unmatched paths to the pages.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Fallback(m.Pages)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			writeStatus(w, http.StatusServiceUnavailable, "not ready")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})

	router.HandleNative("GET /metrics", infra.Metrics.Handler().ServeHTTP)

	return router
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
