// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/permalist/middleware"
	"github.com/danielhkuo/permalist/models"
)

// ListTitleLayout renders dates like "Tuesday, June 10"
const ListTitleLayout = "Monday, January 2"

// ItemStore is the persistence backend used by ItemHandler
type ItemStore interface {
	List(ctx context.Context) ([]models.Item, error)
	Add(ctx context.Context, title string) (int64, error)
	Edit(ctx context.Context, id int64, title string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Renderer produces an HTML document from a view name and data
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

type ItemHandler struct {
	store    ItemStore
	renderer Renderer
	now      func() time.Time
}

type Option func(*ItemHandler)

// WithClock replaces time.Now, used for the list title and item ages
func WithClock(now func() time.Time) Option {
	return func(h *ItemHandler) { h.now = now }
}

func NewItemHandler(store ItemStore, renderer Renderer, opts ...Option) *ItemHandler {
	h := &ItemHandler{store: store, renderer: renderer, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// List handles GET /
// Renders every item under today's date
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("failed to fetch items", "error", err)
		middleware.TextResponse(w, http.StatusInternalServerError, models.ErrMsgListFailed)
		return
	}

	now := h.now()
	view := models.ListView{
		ListTitle: now.Format(ListTitleLayout),
		Items:     items,
		Error:     r.URL.Query().Get("error"),
		Now:       now,
	}

	// Render fully before writing so a template failure can still become a 500
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, "index", view); err != nil {
		slog.Error("failed to render index", "error", err)
		middleware.TextResponse(w, http.StatusInternalServerError, models.ErrMsgRenderFailed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write index", "error", err)
	}
}

// Add handles POST /add
// Inserts a new item from the newItem field
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	title := r.PostFormValue(models.FieldNewItem)
	if title == "" {
		redirectToList(w, r, models.ErrMsgMissingTitle)
		return
	}

	id, err := h.store.Add(r.Context(), title)
	if err != nil {
		slog.Error("failed to add item", "error", err)
		redirectToList(w, r, models.ErrMsgAddFailed)
		return
	}

	slog.Info("item added", "id", id)
	redirectToList(w, r, "")
}

// Edit handles POST /edit
// Replaces the title of updatedItemId with updatedItemTitle
func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	title := r.PostFormValue(models.FieldUpdatedItemTitle)
	id, err := parseItemID(r.PostFormValue(models.FieldUpdatedItemID))
	if err != nil {
		slog.Error("failed to edit item", "error", err)
		redirectToList(w, r, models.ErrMsgEditFailed)
		return
	}

	found, err := h.store.Edit(r.Context(), id, title)
	if err != nil {
		slog.Error("failed to edit item", "id", id, "error", err)
		redirectToList(w, r, models.ErrMsgEditFailed)
		return
	}

	if found {
		slog.Info("item edited", "id", id)
	} else {
		slog.Warn("edit matched no item", "id", id)
	}
	redirectToList(w, r, "")
}

// Delete handles POST /delete
// Removes the item named by deleteItemId
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r.PostFormValue(models.FieldDeleteItemID))
	if err != nil {
		slog.Error("failed to delete item", "error", err)
		redirectToList(w, r, models.ErrMsgDeleteFailed)
		return
	}

	found, err := h.store.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete item", "id", id, "error", err)
		redirectToList(w, r, models.ErrMsgDeleteFailed)
		return
	}

	if found {
		slog.Info("item deleted", "id", id)
	} else {
		slog.Warn("delete matched no item", "id", id)
	}
	redirectToList(w, r, "")
}

// redirectToList sends the client back to the list view, carrying errMsg in
// the error query parameter when it is non-empty
func redirectToList(w http.ResponseWriter, r *http.Request, errMsg string) {
	target := "/"
	if errMsg != "" {
		target += "?" + url.Values{"error": {errMsg}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func parseItemID(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}
