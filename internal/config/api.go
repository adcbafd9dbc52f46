package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JaimeStill/promptcraft/pkg/formatting"
	"github.com/JaimeStill/promptcraft/pkg/middleware"
	"github.com/JaimeStill/promptcraft/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PROMPTCRAFT_CORS_ENABLED",
	Origins:          "PROMPTCRAFT_CORS_ORIGINS",
	AllowedMethods:   "PROMPTCRAFT_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PROMPTCRAFT_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PROMPTCRAFT_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PROMPTCRAFT_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "PROMPTCRAFT_OPENAPI_TITLE",
	Description: "PROMPTCRAFT_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, request limits, CORS, and documentation settings.
type APIConfig struct {
	BasePath        string                `toml:"base_path"`
	MaxBodySize     string                `toml:"max_body_size"`
	PublicFavorites bool                  `toml:"public_favorites"`
	CORS            middleware.CORSConfig `toml:"cors"`
	OpenAPI         openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns MaxBodySize as a byte count.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 64 * 1024 // 64KB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	if overlay.PublicFavorites {
		c.PublicFavorites = true
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "64KB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("PROMPTCRAFT_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("PROMPTCRAFT_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv("PROMPTCRAFT_API_PUBLIC_FAVORITES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.PublicFavorites = b
		}
	}
}

func (c *APIConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || strings.Count(c.BasePath, "/") != 1 || len(c.BasePath) < 2 {
		return fmt.Errorf("base_path must be a single-level path such as /api: %q", c.BasePath)
	}
	if _, err := formatting.ParseBytes(c.MaxBodySize); err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	return nil
}
