package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/league-admin/db/migrations"
	"github.com/riskibarqy/league-admin/internal/platform/logging"
)

// NewMigrator builds a migrator over the embedded migrations of cfg.Driver.
// It owns a dedicated connection; Close on the migrator releases it.
func NewMigrator(cfg Config) (*migrate.Migrate, error) {
	if !cfg.Driver.SQL() {
		return nil, fmt.Errorf("driver %q has no sql migrations", cfg.Driver)
	}

	src, err := iofs.New(migrations.FS, string(cfg.Driver))
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	sqlDB, err := sql.Open(string(cfg.Driver), cfg.DSN())
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	var dbDriver migratedb.Driver
	switch cfg.Driver {
	case DriverPostgres:
		dbDriver, err = migratepg.WithInstance(sqlDB, &migratepg.Config{})
	case DriverSQLite:
		dbDriver, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	}
	if err != nil {
		_ = sqlDB.Close()
		_ = src.Close()
		return nil, fmt.Errorf("init %s migration driver: %w", cfg.Driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(cfg.Driver), dbDriver)
	if err != nil {
		_ = dbDriver.Close()
		_ = src.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return m, nil
}

// Migrate applies every pending up migration.
func Migrate(ctx context.Context, cfg Config, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.WarnContext(ctx, "close migration source failed", "error", srcErr)
		}
		if dbErr != nil {
			logger.WarnContext(ctx, "close migration db failed", "error", dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.InfoContext(ctx, "schema up to date", "driver", cfg.Driver)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.InfoContext(ctx, "schema migrated", "driver", cfg.Driver, "version", version)
	return nil
}
