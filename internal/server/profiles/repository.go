package profiles

import (
	"context"

	"github.com/postmeapp/postme/internal/server/models"
)

// Repository describes persistence operations for Profile rows.
type Repository interface {
	// GetByUsername returns the profile for the normalized username, or
	// common.ErrNotFound when no such profile exists.
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)

	// Insert stores a new profile.
	Insert(ctx context.Context, profile *models.Profile) error
}
