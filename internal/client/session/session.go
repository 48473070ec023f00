// Package session persists the signed-in username across CLI runs.
package session

import (
	"context"
	"errors"

	"github.com/postmeapp/postme/internal/client/repositories/kv"
	"github.com/postmeapp/postme/internal/client/storage"
	"github.com/postmeapp/postme/internal/common"
)

// Tracker remembers which user is signed in on this device. The value
// survives restarts; clearing it signs the user out without touching
// letters or profiles.
type Tracker struct {
	kv kv.Repository
}

func NewTracker(repo kv.Repository) *Tracker {
	return &Tracker{kv: repo}
}

// Current returns the signed-in username, or "" when nobody is signed in.
func (t *Tracker) Current(ctx context.Context) (string, error) {
	userID, err := t.kv.Get(ctx, storage.SessionKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return userID, nil
}

// Set records userID as the signed-in user.
func (t *Tracker) Set(ctx context.Context, userID string) error {
	return t.kv.Set(ctx, storage.SessionKey, userID)
}

// Clear signs the current user out.
func (t *Tracker) Clear(ctx context.Context) error {
	return t.kv.Delete(ctx, storage.SessionKey)
}
