package app

import (
	"database/sql"
	"puzreader/internal/db"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestService is a helper for integration tests that need a real DB and Service.
func SetupTestService(t *testing.T) (*Service, *db.Queries, *sql.DB) {
	dbConn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	dbConn.SetMaxOpenConns(1)

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	queries := db.New(dbConn)
	service := NewService(queries, dbConn)

	t.Cleanup(func() {
		service.Shutdown()
		dbConn.Close()
	})

	return service, queries, dbConn
}
