package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"

	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/migrations"
)

func main() {
	var (
		url     = flag.String("url", "", "Migration URL (pgx5://... or sqlite://...); defaults to the configured store")
		up      = flag.Bool("up", false, "Run all up migrations")
		down    = flag.Bool("down", false, "Run all down migrations")
		steps   = flag.Int("steps", 0, "Number of migrations (positive=up, negative=down)")
		version = flag.Bool("version", false, "Print current migration version")
		force   = flag.Int("force", -1, "Force set version (use with caution)")
	)
	flag.Parse()

	forceSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "force" {
			forceSet = true
		}
	})

	if *url == "" {
		resolved, err := configuredURL()
		if err != nil {
			log.Fatalf("resolve migration url: %v", err)
		}
		*url = resolved
	}

	m, err := migrations.New(*url)
	if err != nil {
		log.Fatalf("failed to create migrator: %v", err)
	}
	defer m.Close()

	switch {
	case *version:
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("failed to get version: %v", err)
		}
		fmt.Printf("version: %d, dirty: %v\n", v, dirty)
	case forceSet:
		if err := m.Force(*force); err != nil {
			log.Fatalf("failed to force version: %v", err)
		}
		fmt.Printf("forced to version %d\n", *force)
	case *up:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("failed to run up migrations: %v", err)
		}
		fmt.Println("migrations applied successfully")
	case *down:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("failed to run down migrations: %v", err)
		}
		fmt.Println("migrations reverted successfully")
	case *steps != 0:
		if err := m.Steps(*steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("failed to run migrations: %v", err)
		}
		fmt.Printf("applied %d migration steps\n", *steps)
	default:
		fmt.Println("usage: migrate [-url <migration-url>] [-up|-down|-steps N|-version|-force N]")
		flag.PrintDefaults()
	}
}

// configuredURL derives the migration URL from config.toml and PROMPTCRAFT_* variables.
// The gibson driver manages its schema remotely and has nothing to migrate.
func configuredURL() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}

	switch cfg.Store.Driver {
	case "postgres", "sqlite":
		return cfg.Store.Database.MigrationURL(), nil
	}
	return "", fmt.Errorf("store driver %q has no local schema; pass -url", cfg.Store.Driver)
}
