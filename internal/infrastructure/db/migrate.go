package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func newMigrator(mysqlDSN string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrate: source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "mysql://"+mysqlDSN)
	if err != nil {
		return nil, fmt.Errorf("migrate: init: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending MySQL migration. Already up to date is not an error.
func MigrateUp(mysqlDSN string, log *zap.Logger) error {
	m, err := newMigrator(mysqlDSN)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}
	v, dirty, _ := m.Version()
	log.Info("migrate: schema ready", zap.Uint("version", v), zap.Bool("dirty", dirty))
	return nil
}

// MigrateDown rolls back n steps.
func MigrateDown(mysqlDSN string, steps int, log *zap.Logger) error {
	m, err := newMigrator(mysqlDSN)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: down: %w", err)
	}
	log.Info("migrate: rolled back", zap.Int("steps", steps))
	return nil
}
