// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"fmt"
	"strings"

	"github.com/pdiddy/blob-extract/pkg/types"
)

// Dialect captures the catalog queries and identifier quoting of one
// database engine.
type Dialect interface {
	// Name returns the driver this dialect belongs to.
	Name() types.Driver

	// QuoteIdent quotes a table or column name for interpolation into SQL.
	QuoteIdent(name string) string

	// IsBlobType reports whether a declared column type stores binary large objects.
	IsBlobType(declared string) bool

	tablesQuery() string
	columnsQuery() string
}

// dialect implements Dialect. Engines differ only in their quote
// character, BLOB type markers, and catalog queries.
type dialect struct {
	name        types.Driver
	quote       string
	blobMarkers []string
	tables      string
	columns     string // one placeholder: the table name
}

func (d *dialect) Name() types.Driver { return d.name }

func (d *dialect) QuoteIdent(name string) string {
	return d.quote + strings.ReplaceAll(name, d.quote, d.quote+d.quote) + d.quote
}

func (d *dialect) IsBlobType(declared string) bool {
	declared = strings.TrimSpace(declared)
	for _, marker := range d.blobMarkers {
		if strings.EqualFold(declared, marker) {
			return true
		}
	}
	return false
}

func (d *dialect) tablesQuery() string  { return d.tables }
func (d *dialect) columnsQuery() string { return d.columns }

var (
	// SQLite lists tables from sqlite_master and columns from the
	// pragma_table_info table-valued function, so the table name binds
	// as a parameter.
	SQLite Dialect = &dialect{
		name:        types.DriverSQLite,
		quote:       `"`,
		blobMarkers: []string{"BLOB"},
		tables:      `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\' ORDER BY name`,
		columns:     `SELECT name, type FROM pragma_table_info(?) ORDER BY cid`,
	}

	MySQL Dialect = &dialect{
		name:        types.DriverMySQL,
		quote:       "`",
		blobMarkers: []string{"BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB"},
		tables: `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES
			WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE'
			ORDER BY TABLE_NAME`,
		columns: `SELECT COLUMN_NAME, DATA_TYPE FROM INFORMATION_SCHEMA.COLUMNS
			WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?
			ORDER BY ORDINAL_POSITION`,
	}

	Postgres Dialect = &dialect{
		name:        types.DriverPostgres,
		quote:       `"`,
		blobMarkers: []string{"BYTEA"},
		tables: `SELECT table_name FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
			ORDER BY table_name`,
		columns: `SELECT column_name, data_type FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1
			ORDER BY ordinal_position`,
	}
)

// DialectFor returns the dialect registered for driver.
func DialectFor(driver types.Driver) (Dialect, error) {
	switch driver.Canonical() {
	case types.DriverSQLite:
		return SQLite, nil
	case types.DriverMySQL:
		return MySQL, nil
	case types.DriverPostgres:
		return Postgres, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q: use sqlite3, mysql, or postgres", driver)
	}
}
