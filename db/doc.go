// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database connection and creates the schema.

# Connecting

Open selects the driver from the configured database type, pings the
server and creates the schema:

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

Drivers:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, single open connection)

# Schema Creation

CreateSchema initializes the items table:

	if err := db.CreateSchema(ctx, conn, cliparse.DatabasePostgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - items: id (generated), title, created_at

title is NOT NULL but may be empty. Rejecting empty titles is the add
handler's job.
*/
package db
