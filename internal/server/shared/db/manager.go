package db

import (
	"context"
	"database/sql"

	"github.com/postmeapp/postme/internal/dbx"
	"github.com/postmeapp/postme/internal/server/letters"
	"github.com/postmeapp/postme/internal/server/profiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Letters() letters.Repository

	// Profiles builds a profile repository over db, which may be the
	// connection pool or a transaction handle.
	Profiles(db dbx.DBTX) profiles.Repository
}
