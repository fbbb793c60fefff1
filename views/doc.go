// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the server-side HTML pages.

Templates are embedded from templates/ and addressed by file name without
the extension:

	renderer := views.MustNew()
	err := renderer.Render(w, "index", models.ListView{...})

# Views

  - index: the list page (models.ListView)

# Template Functions

  - ago: relative age of a timestamp via go-humanize ("3 minutes ago")
  - count: pluralized, comma-grouped count ("1 task", "1,204 tasks")

Output is escaped by html/template; item titles are never trusted.
*/
package views
