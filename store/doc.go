// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements item persistence over database/sql.

	items := store.NewItemStore(conn)
	id, err := items.Add(ctx, "Buy milk")

Queries use $N placeholders, which both lib/pq and modernc.org/sqlite
accept. Edit and Delete report whether a row matched; no match is not an
error.
*/
package store
