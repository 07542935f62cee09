// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package database opens the source database for a configured driver.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/blob-extract/internal/schema"
	"github.com/pdiddy/blob-extract/pkg/types"
)

// Open opens and pings the database described by cfg and returns the
// matching dialect. The caller closes the handle.
func Open(ctx context.Context, cfg types.DatabaseConfig) (*sql.DB, schema.Dialect, error) {
	driver := cfg.Driver.Canonical()
	if driver == "" {
		driver = types.DriverSQLite
	}
	if cfg.DSN == "" {
		return nil, nil, fmt.Errorf("database path or DSN is required")
	}

	dialect, err := schema.DialectFor(driver)
	if err != nil {
		return nil, nil, err
	}

	var driverName, dsn string
	switch driver {
	case types.DriverSQLite:
		// database/sql would create an empty file for a missing path.
		if _, err := os.Stat(sqlitePath(cfg.DSN)); err != nil {
			return nil, nil, fmt.Errorf("opening database %s: %w", cfg.DSN, err)
		}
		driverName, dsn = "sqlite3", sqliteDSN(cfg)
	case types.DriverMySQL:
		driverName, dsn = "mysql", cfg.DSN
	case types.DriverPostgres:
		driverName, dsn = "pgx", cfg.DSN
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%s ping failed: %w", driver, err)
	}
	return db, dialect, nil
}

func sqliteDSN(cfg types.DatabaseConfig) string {
	if !cfg.ReadOnly || strings.Contains(cfg.DSN, "mode=") {
		return cfg.DSN
	}
	dsn := cfg.DSN
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "mode=ro"
}

// sqlitePath strips the URI scheme and query from a sqlite3 DSN.
func sqlitePath(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	return path
}
