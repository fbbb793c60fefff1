// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/permalist/cliparse"
)

const pingTimeout = 5 * time.Second

// Open connects to the configured database, verifies the connection and
// ensures the schema exists. The caller owns the returned pool.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	conn, err := sql.Open(driverName(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	// SQLite allows a single writer
	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		conn.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DatabaseType, err)
	}

	if err := CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

func driverName(dbType string) string {
	if dbType == cliparse.DatabaseSQLite {
		return "sqlite"
	}
	return "postgres"
}
