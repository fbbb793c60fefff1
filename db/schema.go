// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/permalist/cliparse"
)

// CreateSchema creates the items table for the given database type.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case cliparse.DatabasePostgres:
		schema = postgresSchema
	case cliparse.DatabaseSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("failed to create schema: unknown database type %q", dbType)
	}

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// title may be empty; non-empty titles are enforced by the add handler
const postgresSchema = `
CREATE TABLE IF NOT EXISTS items (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
