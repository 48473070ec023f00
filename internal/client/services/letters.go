package services

import (
	"context"
	"fmt"

	"github.com/postmeapp/postme/internal/client/config"
	"github.com/postmeapp/postme/internal/client/models"
	"github.com/postmeapp/postme/internal/common"
	"github.com/postmeapp/postme/internal/logging"
)

// LetterService sends letters and serves the inbox.
//
// Reads degrade gracefully: List never fails, it returns whatever could be
// fetched (possibly nothing). Writes depend on the mode: with the backend
// configured and DualWrite on, every save is mirrored locally and a remote
// failure is logged but swallowed; with DualWrite off, a remote failure
// surfaces as common.ErrPersistence.
type LetterService struct {
	cfg    *config.Config
	remote RemoteStore
	local  LocalStore
	logger logging.Logger
}

func NewLetterService(cfg *config.Config, remote RemoteStore, local LocalStore, logger logging.Logger) *LetterService {
	return &LetterService{cfg: cfg, remote: remote, local: local, logger: logger}
}

// List returns the inbox for userID, newest first. It never returns an
// error: failures are logged and the best available result is returned.
func (s *LetterService) List(ctx context.Context, userID string) []models.Letter {
	userID = common.NormalizeUsername(userID)
	if userID == "" {
		return nil
	}

	if s.cfg.BackendConfigured() {
		letters, err := s.remote.Letters(ctx, userID)
		if err == nil {
			return letters
		}
		s.logger.Warn(ctx, "remote inbox fetch failed", "error", err.Error())

		if !s.cfg.DualWrite {
			return nil
		}
		// fall through to the local mirror
	}

	letters, err := s.local.Letters(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "local inbox fetch failed", "error", err.Error())
		return nil
	}
	return letters
}

// Save validates and persists a letter to the store(s) selected by the
// current configuration.
func (s *LetterService) Save(ctx context.Context, letter *models.Letter) error {
	if letter.To == "" {
		return common.ErrEmptyUsername
	}
	if letter.Content == "" {
		return common.ErrEmptyContent
	}
	if !common.ValidLetterColor(letter.Color) {
		return common.ErrInvalidColor
	}

	if s.cfg.BackendConfigured() {
		if err := s.remote.SaveLetter(ctx, letter); err != nil {
			if !s.cfg.DualWrite {
				return fmt.Errorf("%w: %s", common.ErrPersistence, err)
			}
			s.logger.Warn(ctx, "remote save failed, keeping local copy", "id", letter.ID, "error", err.Error())
		}
		if !s.cfg.DualWrite {
			return nil
		}
	}

	if err := s.local.SaveLetter(ctx, letter); err != nil {
		return fmt.Errorf("%w: %s", common.ErrPersistence, err)
	}
	return nil
}

// MarkRead flags a letter as read in every active store. Failures are
// logged, never surfaced: a missed read flag is not worth interrupting
// the user for.
func (s *LetterService) MarkRead(ctx context.Context, id string) {
	if s.cfg.BackendConfigured() {
		if err := s.remote.MarkRead(ctx, id); err != nil {
			s.logger.Warn(ctx, "remote mark-read failed", "id", id, "error", err.Error())
		}
		if !s.cfg.DualWrite {
			return
		}
	}

	if err := s.local.MarkRead(ctx, id); err != nil {
		s.logger.Error(ctx, "local mark-read failed", "id", id, "error", err.Error())
	}
}

// Delete removes a letter from every active store. Failures are logged,
// never surfaced.
func (s *LetterService) Delete(ctx context.Context, id string) {
	if s.cfg.BackendConfigured() {
		if err := s.remote.DeleteLetter(ctx, id); err != nil {
			s.logger.Warn(ctx, "remote delete failed", "id", id, "error", err.Error())
		}
		if !s.cfg.DualWrite {
			return
		}
	}

	if err := s.local.DeleteLetter(ctx, id); err != nil {
		s.logger.Error(ctx, "local delete failed", "id", id, "error", err.Error())
	}
}
