// Package database provides PostgreSQL and SQLite connection management with
// lifecycle coordination.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/JaimeStill/promptcraft/pkg/lifecycle"
	"github.com/JaimeStill/promptcraft/pkg/query"
)

// MigrateFunc applies schema migrations to the database at the given migration url.
type MigrateFunc func(url string) error

// System manages database connections and lifecycle coordination.
type System interface {
	// Connection returns the underlying database connection pool.
	Connection() *sql.DB
	// Driver returns the configured driver name (postgres or sqlite).
	Driver() string
	// Dialect returns the placeholder dialect the driver accepts.
	Dialect() query.Dialect
	// Start registers startup and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// Option configures optional database behavior.
type Option func(*database)

// WithMigrator runs fn during startup when the config enables auto_migrate.
func WithMigrator(fn MigrateFunc) Option {
	return func(d *database) {
		d.migrate = fn
	}
}

type database struct {
	conn        *sql.DB
	driver      string
	logger      *slog.Logger
	connTimeout time.Duration
	autoMigrate bool
	migrateURL  string
	migrate     MigrateFunc
}

// New creates a database system with the given configuration.
// It calls sql.Open to validate the DSN and configure pool parameters,
// but does not establish a connection until Start is called.
func New(cfg *Config, logger *slog.Logger, opts ...Option) (System, error) {
	db, err := sql.Open(cfg.DriverName(), cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	d := &database{
		conn:        db,
		driver:      cfg.Driver,
		logger:      logger.With("system", "database", "driver", cfg.Driver),
		connTimeout: cfg.ConnTimeoutDuration(),
		autoMigrate: cfg.AutoMigrate,
		migrateURL:  cfg.MigrationURL(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Driver() string {
	return d.driver
}

func (d *database) Dialect() query.Dialect {
	if d.driver == DriverPostgres {
		return query.DialectDollar
	}
	return query.DialectQuestion
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection")

	lc.OnStartup(func() error {
		pingCtx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
		defer cancel()

		if err := d.conn.PingContext(pingCtx); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return fmt.Errorf("database ping: %w", err)
		}

		d.logger.Info("database connection established")

		if d.autoMigrate && d.migrate != nil {
			if err := d.migrate(d.migrateURL); err != nil {
				d.logger.Error("database migration failed", "error", err)
				return fmt.Errorf("database migrate: %w", err)
			}
			d.logger.Info("database migrations applied")
		}

		return nil
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}

		d.logger.Info("database connection closed")
	})

	return nil
}
