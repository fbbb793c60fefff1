package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielhkuo/permalist/router"
	"github.com/danielhkuo/permalist/testutil"
)

func TestServeReleasesDatabaseOnShutdown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	server := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: router.NewRouter(db, testutil.GetTestConfig(t)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, server, db)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Expected clean shutdown, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}

	if err := db.Ping(); err == nil {
		t.Error("Expected database to be closed after shutdown")
	}
}

func TestServeReleasesDatabaseOnListenFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	server := &http.Server{
		Addr:    "127.0.0.1:-1",
		Handler: http.NotFoundHandler(),
	}

	err := serve(context.Background(), server, db)
	if err == nil {
		t.Fatal("Expected listen error for an invalid port")
	}

	if err := db.Ping(); err == nil {
		t.Error("Expected database to be closed after listen failure")
	}
}
