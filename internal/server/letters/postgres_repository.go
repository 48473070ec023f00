package letters

import (
	"context"
	"fmt"

	"github.com/postmeapp/postme/internal/dbx"
	"github.com/postmeapp/postme/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByRecipient(ctx context.Context, recipient string) ([]models.Letter, error) {
	query :=
		`SELECT id, sender, recipient, content, ts, color, is_read, is_magic
		 FROM letters
		 WHERE recipient = $1
		 ORDER BY ts DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, recipient)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Letter
	for rows.Next() {
		var l models.Letter
		if err := rows.Scan(&l.ID, &l.From, &l.To, &l.Content, &l.Timestamp, &l.Color, &l.IsRead, &l.IsMagic); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, l *models.Letter) error {
	query :=
		`INSERT INTO letters (id, sender, recipient, content, ts, color, is_read, is_magic)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.From, l.To, l.Content, l.Timestamp, l.Color, l.IsRead, l.IsMagic)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// MarkRead is idempotent: zero affected rows means the letter is already
// read or gone, which is fine.
func (r *PostgresRepository) MarkRead(ctx context.Context, id string) error {
	query :=
		`UPDATE letters SET is_read = TRUE
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete is idempotent: deleting a missing id affects zero rows and
// succeeds.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM letters
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
