// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# .env Files

Before reading the environment, ParseFlags loads a dotenv file (path from
ENV_FILE, default ".env"). A missing file is ignored. Variables already set
in the process environment are never overridden by the file.

# CLI Flags

	-p            Server port (default: 3000)
	-t            Database type: postgres or sqlite (default: postgres)
	-d            Database URL, overrides the db-* settings
	-db-host      Postgres host (default: localhost)
	-db-port      Postgres port (default: 5432)
	-db-name      Postgres database (default: permalist)
	-db-user      Postgres user (default: postgres)
	-db-sslmode   Postgres sslmode (default: disable)
	-static       Static asset directory (default: public)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	DB_HOST       → -db-host
	DB_PORT       → -db-port
	DB_NAME       → -db-name
	DB_USER       → -db-user
	DB_SSLMODE    → -db-sslmode
	STATIC_DIR    → -static

The store password is read from PASSWORD only; it has no flag.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT or DB_PORT is not a valid port number
  - the database type is neither postgres nor sqlite
  - postgres is selected without DATABASE_URL and PASSWORD is empty

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
