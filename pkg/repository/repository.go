// Package repository provides database/sql helpers that materialize rows as
// column-keyed records.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Querier is implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Executor is implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Record is a single row keyed by column name.
type Record map[string]any

// QueryRecords executes a query and returns every row as a Record.
// Returns an empty slice if no rows are found.
func QueryRecords(ctx context.Context, q Querier, query string, args []any) ([]Record, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]Record, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		rec := make(Record, len(cols))
		for i, col := range cols {
			rec[col] = normalize(values[i])
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Exec executes a statement and returns the number of affected rows.
func Exec(ctx context.Context, e Executor, query string, args []any) (int64, error) {
	result, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// normalize converts driver values into JSON-friendly equivalents.
func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case [16]byte:
		return uuid.UUID(t).String()
	case time.Time:
		return t.UTC()
	}
	return v
}
