// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema introspects the source database: which tables exist,
// which columns they declare, and which of those hold BLOBs. Names it
// returns are the only names the extractor interpolates into SQL.
package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pdiddy/blob-extract/pkg/types"
)

// Inspector reads catalog metadata through a dialect.
type Inspector struct {
	db      *sql.DB
	dialect Dialect
}

// NewInspector returns an Inspector over db. A nil dialect means SQLite.
func NewInspector(db *sql.DB, d Dialect) *Inspector {
	if d == nil {
		d = SQLite
	}
	return &Inspector{db: db, dialect: d}
}

// Dialect returns the dialect used for catalog queries and quoting.
func (i *Inspector) Dialect() Dialect {
	return i.dialect
}

// ListTables returns user table names sorted by name.
func (i *Inspector) ListTables(ctx context.Context) ([]string, error) {
	rows, err := i.db.QueryContext(ctx, i.dialect.tablesQuery())
	if err != nil {
		return nil, types.SchemaError("listing tables", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, types.SchemaError("scanning table name", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, types.SchemaError("listing tables", err)
	}
	return tables, nil
}

// ListColumns returns the columns of table with their declared types.
// A table with no columns in the catalog does not exist.
func (i *Inspector) ListColumns(ctx context.Context, table string) ([]types.ColumnInfo, error) {
	rows, err := i.db.QueryContext(ctx, i.dialect.columnsQuery(), table)
	if err != nil {
		return nil, types.SchemaError(fmt.Sprintf("listing columns of %s", table), err)
	}
	defer rows.Close()

	var cols []types.ColumnInfo
	for rows.Next() {
		var name string
		var declared sql.NullString
		if err := rows.Scan(&name, &declared); err != nil {
			return nil, types.SchemaError("scanning column", err)
		}
		cols = append(cols, types.ColumnInfo{Name: name, DeclaredType: declared.String})
	}
	if err := rows.Err(); err != nil {
		return nil, types.SchemaError(fmt.Sprintf("listing columns of %s", table), err)
	}
	if len(cols) == 0 {
		return nil, types.SchemaError(fmt.Sprintf("table %q", table), fmt.Errorf("no such table"))
	}
	return cols, nil
}

// FindBlobColumns returns the names of columns whose declared type is a
// BLOB type for this dialect. An empty result is not an error.
func (i *Inspector) FindBlobColumns(columns []types.ColumnInfo) []string {
	var blobs []string
	for _, col := range columns {
		if i.dialect.IsBlobType(col.DeclaredType) {
			blobs = append(blobs, col.Name)
		}
	}
	return blobs
}

// ColumnNames returns every column name; any of them may serve as the identifier.
func ColumnNames(columns []types.ColumnInfo) []string {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return names
}
