package database

import (
	"errors"
	"fmt"
	"strings"

	schema "trivia-api/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the "pgx5" migrate driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrationURL rewrites a postgres:// DSN to the pgx5:// scheme golang-migrate's
// pgx/v5 driver is registered under.
func MigrationURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// NewMigrator builds a migrate.Migrate over the embedded SQL migrations.
func NewMigrator(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(schema.MigrationsFS, schema.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending up migration. Being already at the
// latest version is not an error.
func RunMigrations(dsn string) error {
	m, err := NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}
