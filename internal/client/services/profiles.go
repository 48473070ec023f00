package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/postmeapp/postme/internal/client/config"
	"github.com/postmeapp/postme/internal/client/models"
	"github.com/postmeapp/postme/internal/client/session"
	"github.com/postmeapp/postme/internal/common"
	"github.com/postmeapp/postme/internal/logging"
)

// ProfileService manages user profiles and the device session.
type ProfileService struct {
	cfg     *config.Config
	remote  RemoteStore
	local   LocalStore
	session *session.Tracker
	logger  logging.Logger
}

func NewProfileService(cfg *config.Config, remote RemoteStore, local LocalStore, tracker *session.Tracker, logger logging.Logger) *ProfileService {
	return &ProfileService{cfg: cfg, remote: remote, local: local, session: tracker, logger: logger}
}

// Get looks up a profile by username. A missing profile is not an error:
// the result is simply nil.
func (s *ProfileService) Get(ctx context.Context, username string) (*models.UserProfile, error) {
	username = common.NormalizeUsername(username)
	if username == "" {
		return nil, nil
	}

	if s.cfg.BackendConfigured() {
		profile, err := s.remote.GetProfile(ctx, username)
		if err == nil {
			return profile, nil
		}
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		s.logger.Warn(ctx, "remote profile fetch failed", "username", username, "error", err.Error())
		if !s.cfg.DualWrite {
			return nil, err
		}
		// fall through to the local mirror
	}

	profile, err := s.local.GetProfile(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// EnsureUser signs username in: the profile is created if it does not
// exist yet, and the session is pointed at it. Joining is idempotent; a
// failed profile write is logged but does not block sign-in, matching the
// rule that letters, not profiles, are the data that matters.
func (s *ProfileService) EnsureUser(ctx context.Context, username string) (*models.UserProfile, error) {
	username = common.NormalizeUsername(username)
	if username == "" {
		return nil, common.ErrEmptyUsername
	}

	profile, err := s.Get(ctx, username)
	if err != nil {
		s.logger.Warn(ctx, "profile lookup failed", "username", username, "error", err.Error())
	}

	if profile == nil {
		profile = models.NewUserProfile(username)
		s.create(ctx, profile)
	}

	if err := s.session.Set(ctx, username); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	return profile, nil
}

// create stores a new profile in the store(s) selected by the current
// configuration. Best effort.
func (s *ProfileService) create(ctx context.Context, profile *models.UserProfile) {
	if s.cfg.BackendConfigured() {
		if err := s.remote.CreateProfile(ctx, profile); err != nil {
			s.logger.Warn(ctx, "remote profile create failed", "username", profile.UserID, "error", err.Error())
		}
		if !s.cfg.DualWrite {
			return
		}
	}

	if err := s.local.CreateProfile(ctx, profile); err != nil {
		s.logger.Error(ctx, "local profile create failed", "username", profile.UserID, "error", err.Error())
	}
}

// Current returns the signed-in username, or "" when signed out.
func (s *ProfileService) Current(ctx context.Context) (string, error) {
	return s.session.Current(ctx)
}

// Logout clears the session. Stored letters and profiles stay untouched.
func (s *ProfileService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}
