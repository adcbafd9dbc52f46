package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/pkg/openapi"
	"github.com/JaimeStill/promptcraft/pkg/routes"
)

// OpenAPIPath is where the module serves its generated API description.
const OpenAPIPath = "/openapi.json"

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	groups := []routes.Group{
		domain.Prompts.Handler(runtime.MaxBodyBytes).Routes(),
		domain.Favorites.Handler(runtime.MaxBodyBytes, runtime.PublicFavorites).Routes(),
	}

	routes.Register(mux, groups...)

	spec := openapi.NewSpec(&cfg.API.OpenAPI, cfg.Version)
	spec.AddServer(cfg.API.BasePath)
	routes.Describe(spec, groups...)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}
	mux.HandleFunc("GET "+OpenAPIPath, openapi.ServeSpec(specBytes))

	return nil
}
