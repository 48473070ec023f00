package profiles

import (
	"context"
	"database/sql"
	"errors"

	"github.com/postmeapp/postme/internal/common"
	"github.com/postmeapp/postme/internal/dbx"
	"github.com/postmeapp/postme/internal/server/models"
)

// Service applies normalization and defaults in front of the repository.
type Service struct {
	db      *sql.DB
	repoFor func(dbx.DBTX) Repository
}

func NewService(db *sql.DB, repoFor func(dbx.DBTX) Repository) *Service {
	return &Service{db: db, repoFor: repoFor}
}

// Get returns the profile for a username, or common.ErrNotFound. Absence is
// the expected "unregistered user" signal, not a failure.
func (s *Service) Get(ctx context.Context, username string) (*models.Profile, error) {
	username = common.NormalizeUsername(username)
	if username == "" {
		return nil, common.ErrEmptyUsername
	}
	return s.repoFor(s.db).GetByUsername(ctx, username)
}

// Create registers a profile, defaulting the avatar when empty. Creation is
// get-or-create inside one transaction: two clients joining with the same
// username both succeed, and the first stored profile wins. On an existing
// username p is overwritten with the stored row.
func (s *Service) Create(ctx context.Context, p *models.Profile) error {
	p.Username = common.NormalizeUsername(p.Username)
	if p.Username == "" {
		return common.ErrEmptyUsername
	}
	if p.Avatar == "" {
		p.Avatar = common.DefaultAvatar
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repoFor(tx)

		existing, err := repo.GetByUsername(ctx, p.Username)
		if err == nil {
			*p = *existing
			return nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		return repo.Insert(ctx, p)
	})
}
