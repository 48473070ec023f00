package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/postmeapp/postme/internal/common"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)")
	require.NoError(t, err)

	return NewSQLiteRepository(db)
}

func TestGetMissingKey(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k1", "v1"))

	value, err := repo.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", value)
}

func TestSetOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k1", "v1"))
	require.NoError(t, repo.Set(ctx, "k1", "v2"))

	value, err := repo.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k1", "v1"))
	require.NoError(t, repo.Delete(ctx, "k1"))

	_, err := repo.Get(ctx, "k1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteMissingKey(t *testing.T) {
	repo := newTestRepository(t)

	assert.NoError(t, repo.Delete(context.Background(), "absent"))
}
