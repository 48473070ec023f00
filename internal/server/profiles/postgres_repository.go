package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postmeapp/postme/internal/common"
	"github.com/postmeapp/postme/internal/dbx"
	"github.com/postmeapp/postme/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query :=
		`SELECT username, avatar FROM profiles
		 WHERE username = $1
		 `

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&p.Username, &p.Avatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, p *models.Profile) error {
	query :=
		`INSERT INTO profiles (username, avatar)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, p.Username, p.Avatar); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
