// Package services implements the PostMe client behavior on top of the two
// stores: the remote backend and the device-local fallback. Which store
// serves a call is decided fresh on every operation from the current
// configuration.
package services

import (
	"context"

	"github.com/postmeapp/postme/internal/client/models"
)

// RemoteStore is the backend as seen by the services. *api.Client
// satisfies it.
type RemoteStore interface {
	Letters(ctx context.Context, userID string) ([]models.Letter, error)
	SaveLetter(ctx context.Context, letter *models.Letter) error
	MarkRead(ctx context.Context, id string) error
	DeleteLetter(ctx context.Context, id string) error
	GetProfile(ctx context.Context, username string) (*models.UserProfile, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
}

// LocalStore is the device-local fallback as seen by the services.
// *storage.Local satisfies it.
type LocalStore interface {
	Letters(ctx context.Context, userID string) ([]models.Letter, error)
	SaveLetter(ctx context.Context, letter *models.Letter) error
	MarkRead(ctx context.Context, id string) error
	DeleteLetter(ctx context.Context, id string) error
	GetProfile(ctx context.Context, username string) (*models.UserProfile, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
}
