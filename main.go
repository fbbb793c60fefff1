package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/permalist/cliparse"
	"github.com/danielhkuo/permalist/db"
	"github.com/danielhkuo/permalist/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect, verify and create schema
	dbConn, err := db.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("database startup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "type", cfg.DatabaseType)

	// Create server
	server := &http.Server{
		Handler:           router.NewRouter(dbConn, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Ctrl-C or SIGTERM cancels ctx
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Listening", "port", cfg.Port)
	if err := serve(ctx, server, dbConn); err != nil {
		slog.Error("Server closed", "error", err)
		stop()
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// serve runs server until ctx is cancelled or listening fails. In both cases
// in-flight requests finish before dbConn is closed.
func serve(ctx context.Context, server *http.Server, dbConn *sql.DB) error {
	defer closeDatabase(dbConn)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Gracefully shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		server.Close()
	}

	if lerr := <-listenErr; lerr != nil && !errors.Is(lerr, http.ErrServerClosed) {
		return lerr
	}
	return err
}

func closeDatabase(dbConn *sql.DB) {
	if err := dbConn.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
		return
	}
	slog.Info("Disconnected from the database")
}
