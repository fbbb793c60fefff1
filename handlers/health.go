// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/permalist/middleware"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	backend Pinger
}

func NewHealthHandler(backend Pinger) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.TextResponse(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	middleware.TextResponse(w, http.StatusOK, "OK")
}
