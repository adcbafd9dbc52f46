package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/promptcraft/pkg/database"
	"github.com/JaimeStill/promptcraft/pkg/lifecycle"
	"github.com/JaimeStill/promptcraft/pkg/query"
	"github.com/JaimeStill/promptcraft/pkg/repository"
)

type sqlStore struct {
	db     database.System
	logger *slog.Logger
}

// NewSQL creates a store backed by a local database connection.
func NewSQL(db database.System, logger *slog.Logger) System {
	return &sqlStore{
		db:     db,
		logger: logger.With("system", "store", "backend", db.Driver()),
	}
}

func (s *sqlStore) Backend() string {
	return s.db.Driver()
}

func (s *sqlStore) Query(ctx context.Context, stmt query.Statement) (json.RawMessage, error) {
	records, err := repository.QueryRecords(
		ctx, s.db.Connection(), stmt.Bind(s.db.Dialect()), stmt.Args,
	)
	if err != nil {
		s.logger.Error("query failed", "error", err)
		return nil, &Error{Detail: repository.ErrorDetail(err), Err: err}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, &Error{Detail: fmt.Sprintf("encode rows: %v", err), Err: err}
	}
	return data, nil
}

func (s *sqlStore) Exec(ctx context.Context, stmt query.Statement) error {
	if _, err := repository.Exec(
		ctx, s.db.Connection(), stmt.Bind(s.db.Dialect()), stmt.Args,
	); err != nil {
		s.logger.Error("exec failed", "error", err)
		return &Error{Detail: repository.ErrorDetail(err), Err: err}
	}
	return nil
}

func (s *sqlStore) Start(lc *lifecycle.Coordinator) error {
	return s.db.Start(lc)
}
