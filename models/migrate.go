package models

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/mysql/*.sql
var migrations embed.FS

// Migrate applies every pending schema migration for driver.
func Migrate(ctx context.Context, driver, dsn string) error {
	if driver == DriverMySQL {
		normalized, err := normalizeMySQLDSN(dsn)
		if err != nil {
			return err
		}
		dsn = normalized
	} else if driver != DriverPostgres {
		return fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return MigrateWithDB(ctx, db, driver)
}

// MigrateWithDB runs migrations over an existing connection.
func MigrateWithDB(ctx context.Context, db *sql.DB, driver string) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations/"+driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
