// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for Permalist.

# Handler Types

  - ItemHandler: list, add, edit and delete to-do items
  - HealthHandler: backend liveness

Handlers receive their collaborators through constructors, so tests can pass
doubles:

	items := handlers.NewItemHandler(store.NewItemStore(db), views.MustNew())
	health := handlers.NewHealthHandler(store.NewItemStore(db))

ItemHandler depends on two narrow interfaces: ItemStore (List, Add, Edit,
Delete) and Renderer (Render by view name).

# Endpoints

	GET  /        → List   (200 HTML, 500 plain text on store failure)
	POST /add     → Add    (form field newItem)
	POST /edit    → Edit   (form fields updatedItemId, updatedItemTitle)
	POST /delete  → Delete (form field deleteItemId)

# Redirect-with-error

Write operations never answer with an error status. They redirect (302) to
the list view, adding an error query parameter when something failed:

	/?error=Please+provide+a+task
	/?error=An+error+occurred+while+adding+a+new+task
	/?error=An+error+occurred+while+editing+a+task
	/?error=An+error+occurred+while+deleting+a+task

An absent or empty newItem is rejected before the store is touched; any
other value, whitespace included, is stored as submitted. An identifier that
is not an integer is reported like a store failure. Editing or deleting an
identifier that matches no row is not an error.

The list view shows the error parameter as a banner.
*/
package handlers
