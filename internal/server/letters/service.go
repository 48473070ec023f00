package letters

import (
	"context"
	"fmt"

	"github.com/postmeapp/postme/internal/common"
	"github.com/postmeapp/postme/internal/server/models"
)

// Service applies validation and normalization in front of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, recipient string) ([]models.Letter, error) {
	recipient = common.NormalizeUsername(recipient)
	if recipient == "" {
		return nil, common.ErrEmptyUsername
	}
	return s.repo.ListByRecipient(ctx, recipient)
}

func (s *Service) Save(ctx context.Context, l *models.Letter) error {
	l.To = common.NormalizeUsername(l.To)
	if l.To == "" {
		return common.ErrEmptyUsername
	}
	if l.Content == "" {
		return common.ErrEmptyContent
	}
	if !common.ValidLetterColor(l.Color) {
		return fmt.Errorf("%w: %q", common.ErrInvalidColor, l.Color)
	}
	return s.repo.Insert(ctx, l)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
