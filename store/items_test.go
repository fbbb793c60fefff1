// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/danielhkuo/permalist/testutil"
)

func newMockStore(t *testing.T) (*ItemStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewItemStore(db), mock
}

func TestAddBindsTitleAsParameter(t *testing.T) {
	s, mock := newMockStore(t)
	fixed := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	title := "Robert'); DROP TABLE items;--"
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO items (title, created_at) VALUES ($1, $2) RETURNING id`)).
		WithArgs(title, fixed).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := s.Add(context.Background(), title)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != 7 {
		t.Errorf("Expected id 7, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEditBindsTitleAndID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE items SET title = $1 WHERE items.id = $2`)).
		WithArgs("Walk dog", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := s.Edit(context.Background(), 3, "Walk dog")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if !found {
		t.Error("Expected a matched row")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteBindsID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE items.id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := s.Delete(context.Background(), 42)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if found {
		t.Error("Expected no matched row")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestQueryErrorsAreWrapped(t *testing.T) {
	errBackend := errors.New("connection reset")

	t.Run("list", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT id, title, created_at FROM items").WillReturnError(errBackend)

		if _, err := s.List(context.Background()); !errors.Is(err, errBackend) {
			t.Errorf("Expected wrapped backend error, got %v", err)
		}
	})

	t.Run("add", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("INSERT INTO items").WillReturnError(errBackend)

		if _, err := s.Add(context.Background(), "x"); !errors.Is(err, errBackend) {
			t.Errorf("Expected wrapped backend error, got %v", err)
		}
	})

	t.Run("edit", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec("UPDATE items").WillReturnError(errBackend)

		if _, err := s.Edit(context.Background(), 1, "x"); !errors.Is(err, errBackend) {
			t.Errorf("Expected wrapped backend error, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec("DELETE FROM items").WillReturnError(errBackend)

		if _, err := s.Delete(context.Background(), 1); !errors.Is(err, errBackend) {
			t.Errorf("Expected wrapped backend error, got %v", err)
		}
	})
}

func TestListScanError(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "title", "created_at"}).
		AddRow("not-a-number", "Buy milk", time.Now())
	mock.ExpectQuery("SELECT id, title, created_at FROM items").WillReturnRows(rows)

	if _, err := s.List(context.Background()); err == nil {
		t.Error("Expected scan error")
	}
}

func TestItemLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := NewItemStore(conn)
	ctx := context.Background()

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("Expected empty list, got %d items", len(items))
	}

	milk, err := s.Add(ctx, "Buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	bread, err := s.Add(ctx, "Buy bread")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if milk == bread {
		t.Fatalf("Expected distinct ids, got %d twice", milk)
	}

	found, err := s.Edit(ctx, milk, "Buy oat milk")
	if err != nil || !found {
		t.Fatalf("Edit: found=%v err=%v", found, err)
	}

	items, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].ID != milk || items[0].Title != "Buy oat milk" {
		t.Errorf("Unexpected first item: %+v", items[0])
	}
	if items[1].Title != "Buy bread" {
		t.Errorf("Edit touched another row: %+v", items[1])
	}
	if items[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	found, err = s.Delete(ctx, bread)
	if err != nil || !found {
		t.Fatalf("Delete: found=%v err=%v", found, err)
	}
	found, err = s.Delete(ctx, bread)
	if err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if found {
		t.Error("Expected second delete to match nothing")
	}

	if n := testutil.CountItems(t, conn); n != 1 {
		t.Errorf("Expected 1 item left, got %d", n)
	}

	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
