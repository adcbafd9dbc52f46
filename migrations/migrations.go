// Package migrations embeds the schema migrations for each supported database driver.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// New creates a migrator for the database at url. The url scheme selects both the
// migrate database driver and the embedded migration set: pgx5:// uses the
// postgres migrations and sqlite:// the sqlite migrations.
// The caller must Close the returned migrator.
func New(url string) (*migrate.Migrate, error) {
	dir, err := sourceDir(url)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(files, dir)
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// Up applies all pending migrations. An up-to-date schema is not an error.
func Up(url string) error {
	m, err := New(url)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func sourceDir(url string) (string, error) {
	switch {
	case strings.HasPrefix(url, "pgx5://"):
		return "postgres", nil
	case strings.HasPrefix(url, "sqlite://"):
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported migration url scheme: %q", url)
}
