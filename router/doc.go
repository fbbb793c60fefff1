// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for Permalist.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Items:

	GET  /       - Render the list
	POST /add    - Add an item
	POST /edit   - Rename an item
	POST /delete - Remove an item

Static assets:

	GET /<path> - Files under cfg.StaticDir (e.g. /styles.css)

The list is registered as "GET /{$}" so it only matches the exact root;
every other GET path falls through to the file server.

# Handler Initialization

The router wires the store and renderer into the handlers:

	items := store.NewItemStore(db)
	itemHandler := handlers.NewItemHandler(items, views.MustNew())
	healthHandler := handlers.NewHealthHandler(items)
*/
package router
