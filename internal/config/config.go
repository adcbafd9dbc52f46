package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/promptcraft/pkg/database"
	"github.com/JaimeStill/promptcraft/pkg/identity"
	"github.com/JaimeStill/promptcraft/pkg/store"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvPromptCraftEnv             = "PROMPTCRAFT_ENV"
	EnvPromptCraftShutdownTimeout = "PROMPTCRAFT_SHUTDOWN_TIMEOUT"
	EnvPromptCraftVersion         = "PROMPTCRAFT_VERSION"
	EnvPromptCraftLogLevel        = "PROMPTCRAFT_LOG_LEVEL"
)

var storeEnv = &store.Env{
	Driver:        "PROMPTCRAFT_STORE_DRIVER",
	GibsonAPIURL:  "PROMPTCRAFT_GIBSON_API_URL",
	GibsonAPIKey:  "PROMPTCRAFT_GIBSON_API_KEY",
	GibsonTimeout: "PROMPTCRAFT_GIBSON_TIMEOUT",
	Database: &database.Env{
		Host:            "PROMPTCRAFT_DB_HOST",
		Port:            "PROMPTCRAFT_DB_PORT",
		Name:            "PROMPTCRAFT_DB_NAME",
		User:            "PROMPTCRAFT_DB_USER",
		Password:        "PROMPTCRAFT_DB_PASSWORD",
		SSLMode:         "PROMPTCRAFT_DB_SSL_MODE",
		Path:            "PROMPTCRAFT_DB_PATH",
		AutoMigrate:     "PROMPTCRAFT_DB_AUTO_MIGRATE",
		MaxOpenConns:    "PROMPTCRAFT_DB_MAX_OPEN_CONNS",
		MaxIdleConns:    "PROMPTCRAFT_DB_MAX_IDLE_CONNS",
		ConnMaxLifetime: "PROMPTCRAFT_DB_CONN_MAX_LIFETIME",
		ConnTimeout:     "PROMPTCRAFT_DB_CONN_TIMEOUT",
	},
}

var identityEnv = &identity.Env{
	Provider:          "PROMPTCRAFT_IDENTITY_PROVIDER",
	Issuer:            "PROMPTCRAFT_IDENTITY_ISSUER",
	ClientID:          "PROMPTCRAFT_IDENTITY_CLIENT_ID",
	JWKSURL:           "PROMPTCRAFT_IDENTITY_JWKS_URL",
	SkipClientIDCheck: "PROMPTCRAFT_IDENTITY_SKIP_CLIENT_ID_CHECK",
	Secret:            "PROMPTCRAFT_IDENTITY_SECRET",
	CookieName:        "PROMPTCRAFT_IDENTITY_COOKIE_NAME",
	SignInURL:         "PROMPTCRAFT_IDENTITY_SIGN_IN_URL",
	SignUpURL:         "PROMPTCRAFT_IDENTITY_SIGN_UP_URL",
	SignOutURL:        "PROMPTCRAFT_IDENTITY_SIGN_OUT_URL",
}

// Config is the root configuration for the PromptCraft service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Store           store.Config    `toml:"store"`
	Identity        identity.Config `toml:"identity"`
	API             APIConfig       `toml:"api"`
	LogLevel        string          `toml:"log_level"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the PROMPTCRAFT_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvPromptCraftEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Store.Merge(&overlay.Store)
	c.Identity.Merge(&overlay.Identity)
	c.API.Merge(&overlay.API)
}

// Finalize applies defaults, environment variable overrides, and validation
// to the root config and every section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Store.Finalize(storeEnv); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := c.Identity.Finalize(identityEnv); err != nil {
		return fmt.Errorf("identity: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvPromptCraftLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPromptCraftShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvPromptCraftVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvPromptCraftEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
