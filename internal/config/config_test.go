package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/pkg/store"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "1m"
shutdown_timeout = "30s"

[store]
driver = "gibson"

[store.gibson]
api_key = "gibson-key"
timeout = "10s"

[identity]
provider = "oidc"
issuer = "https://clerk.example.test"
skip_client_id_check = true
sign_in_url = "https://accounts.example.test/sign-in"

[api]
base_path = "/api"
max_body_size = "32KB"

[api.cors]
enabled = false
`

const overlayConfig = `
[server]
port = 9090

[store]
driver = "sqlite"

[store.database]
path = "staging.db"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	t.Chdir(dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"server port", cfg.Server.Port, 8080},
		{"store driver", cfg.Store.Driver, store.DriverGibson},
		{"gibson key", cfg.Store.Gibson.APIKey, "gibson-key"},
		{"gibson url default", cfg.Store.Gibson.APIURL, store.DefaultGibsonURL},
		{"identity issuer", cfg.Identity.Issuer, "https://clerk.example.test"},
		{"identity cookie default", cfg.Identity.CookieName, "__session"},
		{"api base path", cfg.API.BasePath, "/api"},
		{"api max body", cfg.API.MaxBodySizeBytes(), int64(32 * 1024)},
		{"public favorites default", cfg.API.PublicFavorites, false},
		{"log level default", cfg.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	t.Chdir(dir)

	t.Setenv("PROMPTCRAFT_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Store.Driver != store.DriverSQLite {
		t.Errorf("store driver: got %s, want sqlite (from overlay)", cfg.Store.Driver)
	}
	if cfg.Store.Database.Path != "staging.db" {
		t.Errorf("db path: got %s, want staging.db (from overlay)", cfg.Store.Database.Path)
	}
	if cfg.Identity.Issuer != "https://clerk.example.test" {
		t.Errorf("identity issuer: got %s (from base)", cfg.Identity.Issuer)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	t.Chdir(dir)

	t.Setenv("PROMPTCRAFT_VERSION", "2.0.0")
	t.Setenv("PROMPTCRAFT_SERVER_PORT", "3000")
	t.Setenv("PROMPTCRAFT_GIBSON_API_KEY", "env-key")
	t.Setenv("PROMPTCRAFT_API_PUBLIC_FAVORITES", "true")
	t.Setenv("PROMPTCRAFT_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Store.Gibson.APIKey != "env-key" {
		t.Errorf("gibson key: got %s, want env-key", cfg.Store.Gibson.APIKey)
	}
	if !cfg.API.PublicFavorites {
		t.Error("public favorites: got false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: got %s, want debug", cfg.LogLevel)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("PROMPTCRAFT_STORE_DRIVER", "sqlite")
	t.Setenv("PROMPTCRAFT_IDENTITY_PROVIDER", "hmac")
	t.Setenv("PROMPTCRAFT_IDENTITY_SECRET", "local-dev-secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Store.Database.Path != "promptcraft.db" {
		t.Errorf("db path default: got %s, want promptcraft.db", cfg.Store.Database.Path)
	}
	if cfg.Identity.Secret != "local-dev-secret" {
		t.Errorf("identity secret from env: got %s", cfg.Identity.Secret)
	}
}

func TestLoadMissingRequiredValues(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error without a gibson api key")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `shutdown_timeout = `)
	t.Chdir(dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"shutdown timeout", "PROMPTCRAFT_SHUTDOWN_TIMEOUT", "forever"},
		{"log level", "PROMPTCRAFT_LOG_LEVEL", "verbose"},
		{"max body size", "PROMPTCRAFT_API_MAX_BODY_SIZE", "lots"},
		{"server port", "PROMPTCRAFT_SERVER_PORT", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.toml", baseConfig)
			t.Chdir(dir)
			t.Setenv(tt.env, tt.val)

			if _, err := config.Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.env, tt.val)
			}
		})
	}
}

func TestEnvDefault(t *testing.T) {
	cfg := &config.Config{}
	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}

	t.Setenv("PROMPTCRAFT_ENV", "production")
	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	t.Chdir(dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := cfg.ShutdownTimeoutDuration(); got != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", got)
	}
}

func TestServerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg config.ServerConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("finalize failed: %v", err)
		}
		if cfg.ReadHeaderTimeoutDuration() != 5*time.Second || cfg.IdleTimeoutDuration() != 2*time.Minute {
			t.Errorf("timeouts: %+v", cfg)
		}
	})

	t.Run("platform port", func(t *testing.T) {
		t.Setenv("PORT", "5000")
		var cfg config.ServerConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("finalize failed: %v", err)
		}
		if cfg.Addr() != "0.0.0.0:5000" {
			t.Errorf("addr: got %s", cfg.Addr())
		}
	})

	t.Run("explicit port wins", func(t *testing.T) {
		t.Setenv("PORT", "5000")
		t.Setenv("PROMPTCRAFT_SERVER_PORT", "6000")
		var cfg config.ServerConfig
		cfg.Finalize()
		if cfg.Port != 6000 {
			t.Errorf("port: got %d, want 6000", cfg.Port)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		cfg := config.ServerConfig{IdleTimeout: "forever"}
		if err := cfg.Finalize(); err == nil {
			t.Error("expected invalid idle_timeout error")
		}
	})

	t.Run("merge", func(t *testing.T) {
		cfg := config.ServerConfig{WriteTimeout: "10s", Port: 80}
		cfg.Merge(&config.ServerConfig{WriteTimeout: "20s"})
		if cfg.WriteTimeout != "20s" || cfg.Port != 80 {
			t.Errorf("merged: %+v", cfg)
		}
	})
}
