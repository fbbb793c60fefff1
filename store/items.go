// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/permalist/models"
)

// ItemStore runs the item queries against a shared connection pool.
// Every value is bound as a statement parameter.
type ItemStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db, now: time.Now}
}

// List returns every item ordered by id
func (s *ItemStore) List(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_at FROM items ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// Add inserts a new item and returns its generated id
func (s *ItemStore) Add(ctx context.Context, title string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO items (title, created_at) VALUES ($1, $2) RETURNING id
	`, title, s.now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	return id, nil
}

// Edit replaces the title of the item with the given id.
// It reports whether a row matched.
func (s *ItemStore) Edit(ctx context.Context, id int64, title string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE items SET title = $1 WHERE items.id = $2
	`, title, id)
	if err != nil {
		return false, fmt.Errorf("failed to update item %d: %w", id, err)
	}

	return affected(result)
}

// Delete removes the item with the given id.
// It reports whether a row matched.
func (s *ItemStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM items WHERE items.id = $1
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete item %d: %w", id, err)
	}

	return affected(result)
}

// Ping checks that the backend is reachable
func (s *ItemStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
