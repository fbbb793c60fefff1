// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/permalist/cliparse"
	"github.com/danielhkuo/permalist/db"
)

// SetupTestDB opens a fresh SQLite database in a temp dir with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration backed by SQLite
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	dir := t.TempDir()
	staticDir := filepath.Join(dir, "public")
	if err := os.Mkdir(staticDir, 0o755); err != nil {
		t.Fatalf("Failed to create static dir: %v", err)
	}

	return cliparse.Config{
		Port:         3000,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(dir, "permalist_test.db"),
		StaticDir:    staticDir,
	}
}

// CreateTestItem inserts an item directly and returns its ID
func CreateTestItem(t *testing.T, conn *sql.DB, title string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO items (title, created_at) VALUES ($1, $2) RETURNING id
	`, title, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}

	return id
}

// CountItems returns the number of rows in the items table
func CountItems(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("Failed to count items: %v", err)
	}
	return n
}

// ItemTitle returns the title stored for id, failing the test if it is missing
func ItemTitle(t *testing.T, conn *sql.DB, id int64) string {
	t.Helper()

	var title string
	err := conn.QueryRow(`SELECT title FROM items WHERE id = $1`, id).Scan(&title)
	if err != nil {
		t.Fatalf("Failed to read item %d: %v", id, err)
	}
	return title
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to the list view with the given error message.
// An empty message means no error parameter is expected.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, errMsg string) {
	t.Helper()

	AssertStatus(t, w, http.StatusFound)

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("Invalid Location header %q: %v", w.Header().Get("Location"), err)
	}
	if loc.Path != "/" {
		t.Errorf("Expected redirect to '/', got '%s'", loc.Path)
	}

	got := loc.Query().Get("error")
	if got != errMsg {
		t.Errorf("Expected error parameter '%s', got '%s'", errMsg, got)
	}
	if errMsg == "" && loc.RawQuery != "" {
		t.Errorf("Expected no query string, got '%s'", loc.RawQuery)
	}
}
