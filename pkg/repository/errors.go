package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorDetail renders a database error as text suitable for relaying to a client.
// PostgreSQL errors include their SQLSTATE code and server-provided detail.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Detail != "" {
			return fmt.Sprintf("%s: %s (%s)", pgErr.Code, pgErr.Message, pgErr.Detail)
		}
		return fmt.Sprintf("%s: %s", pgErr.Code, pgErr.Message)
	}

	return err.Error()
}
