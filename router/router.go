// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/permalist/cliparse"
	"github.com/danielhkuo/permalist/handlers"
	"github.com/danielhkuo/permalist/middleware"
	"github.com/danielhkuo/permalist/store"
	"github.com/danielhkuo/permalist/views"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	items := store.NewItemStore(db)
	itemHandler := handlers.NewItemHandler(items, views.MustNew())
	healthHandler := handlers.NewHealthHandler(items)

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Item list (exact root only)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(itemHandler.List))

	// Item mutations
	mux.HandleFunc("POST /add", middleware.WithLogging(itemHandler.Add))
	mux.HandleFunc("POST /edit", middleware.WithLogging(itemHandler.Edit))
	mux.HandleFunc("POST /delete", middleware.WithLogging(itemHandler.Delete))

	// Static assets
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))

	return mux
}
