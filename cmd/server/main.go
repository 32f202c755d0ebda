package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"puzreader/internal/app"
	"puzreader/internal/db"
	"puzreader/internal/logging"
	"puzreader/internal/transport"
	"syscall"
	"time"

	_ "modernc.org/sqlite"
)

func main() {
	logger := logging.Default()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "puzzles.db"
	}

	dbConn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		logger.Fatal("opening database", logging.FieldError, err)
	}
	defer dbConn.Close()

	if err := db.Migrate(dbConn); err != nil {
		dbConn.Close()
		logger.Fatal("migrating database", logging.FieldError, err)
	}

	queries := db.New(dbConn)
	service := app.NewService(queries, dbConn)
	defer service.Shutdown()
	server := transport.NewServer(service)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = service.Subscribe(ctx, func(puzzleID string) {
		logger.Debug("import event", logging.FieldPuzzleID, puzzleID)
	})
	if err != nil {
		logger.Warn("import events unavailable", logging.FieldError, err)
	}

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", logging.FieldAddr, "http://localhost:"+port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", logging.FieldError, err)
	}
}
