package store

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/JaimeStill/promptcraft/pkg/database"
)

// Supported store drivers.
const (
	DriverGibson   = "gibson"
	DriverPostgres = database.DriverPostgres
	DriverSQLite   = database.DriverSQLite
)

// DefaultGibsonURL is the hosted query endpoint of the Gibson data API.
const DefaultGibsonURL = "https://api.gibsonai.com/v1/-/query"

// Config selects the store backend and holds its connection settings.
type Config struct {
	Driver   string          `toml:"driver"`
	Gibson   GibsonConfig    `toml:"gibson"`
	Database database.Config `toml:"database"`
}

// GibsonConfig holds settings for the remote query service.
type GibsonConfig struct {
	APIURL  string `toml:"api_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Driver        string
	GibsonAPIURL  string
	GibsonAPIKey  string
	GibsonTimeout string
	Database      *database.Env
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *GibsonConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// The nested database config is finalized only for database-backed drivers.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}

	switch c.Driver {
	case DriverGibson:
		return c.Gibson.validate()
	case DriverPostgres, DriverSQLite:
		c.Database.Driver = c.Driver
		var dbEnv *database.Env
		if env != nil {
			dbEnv = env.Database
		}
		if err := c.Database.Finalize(dbEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
		return nil
	}

	return fmt.Errorf("unsupported driver: %q", c.Driver)
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Driver != "" {
		c.Driver = overlay.Driver
	}
	if overlay.Gibson.APIURL != "" {
		c.Gibson.APIURL = overlay.Gibson.APIURL
	}
	if overlay.Gibson.APIKey != "" {
		c.Gibson.APIKey = overlay.Gibson.APIKey
	}
	if overlay.Gibson.Timeout != "" {
		c.Gibson.Timeout = overlay.Gibson.Timeout
	}
	c.Database.Merge(&overlay.Database)
}

func (c *Config) loadDefaults() {
	if c.Driver == "" {
		c.Driver = DriverGibson
	}
	if c.Gibson.APIURL == "" {
		c.Gibson.APIURL = DefaultGibsonURL
	}
	if c.Gibson.Timeout == "" {
		c.Gibson.Timeout = "30s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Driver != "" {
		if v := os.Getenv(env.Driver); v != "" {
			c.Driver = v
		}
	}
	if env.GibsonAPIURL != "" {
		if v := os.Getenv(env.GibsonAPIURL); v != "" {
			c.Gibson.APIURL = v
		}
	}
	if env.GibsonAPIKey != "" {
		if v := os.Getenv(env.GibsonAPIKey); v != "" {
			c.Gibson.APIKey = v
		}
	}
	if env.GibsonTimeout != "" {
		if v := os.Getenv(env.GibsonTimeout); v != "" {
			c.Gibson.Timeout = v
		}
	}
}

func (c *GibsonConfig) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gibson api_key required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid gibson api_url: %q", c.APIURL)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid gibson timeout: %w", err)
	}
	return nil
}
