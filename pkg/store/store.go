// Package store executes parameterized SQL against the configured data backend:
// the remote Gibson query service or a local PostgreSQL or SQLite database.
// Row results are returned as a JSON array of column-keyed objects.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/promptcraft/pkg/database"
	"github.com/JaimeStill/promptcraft/pkg/lifecycle"
	"github.com/JaimeStill/promptcraft/pkg/query"
)

// System executes statements against a data backend.
type System interface {
	// Query runs a row-returning statement and returns the rows as a JSON array.
	Query(ctx context.Context, stmt query.Statement) (json.RawMessage, error)
	// Exec runs a statement whose rows are not needed.
	Exec(ctx context.Context, stmt query.Statement) error
	// Backend returns the configured driver name.
	Backend() string
	// Start registers startup and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// New creates the store backend selected by cfg.Driver.
// Database options apply only to the postgres and sqlite drivers.
func New(cfg *Config, logger *slog.Logger, opts ...database.Option) (System, error) {
	switch cfg.Driver {
	case DriverGibson:
		return newGibson(&cfg.Gibson, logger), nil
	case DriverPostgres, DriverSQLite:
		db, err := database.New(&cfg.Database, logger, opts...)
		if err != nil {
			return nil, err
		}
		return NewSQL(db, logger), nil
	}
	return nil, fmt.Errorf("unsupported store driver: %q", cfg.Driver)
}

// QueryAs runs stmt and decodes the returned rows into a slice of T.
func QueryAs[T any](ctx context.Context, s System, stmt query.Statement) ([]T, error) {
	raw, err := s.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &Error{Detail: fmt.Sprintf("decode rows: %v", err), Err: err}
	}
	return items, nil
}
