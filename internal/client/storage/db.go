// Package storage implements the client's device-local persistence: a
// SQLite database holding a kv table, with letters, profiles and the
// current session stored as JSON values under well-known keys.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/postmeapp/postme/internal/client/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// InitDatabase opens (creating if needed) the local SQLite database at path
// and applies schema migrations.
func InitDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}

	if err := goose.Up(db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}
