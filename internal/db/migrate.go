package db

import (
	"database/sql"
	"fmt"
	"puzreader/sql/schema"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded schema migrations.
func Migrate(conn *sql.DB) error {
	goose.SetBaseFS(schema.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(conn, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
