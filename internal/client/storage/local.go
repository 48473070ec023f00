package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/postmeapp/postme/internal/client/models"
	"github.com/postmeapp/postme/internal/client/repositories/kv"
	"github.com/postmeapp/postme/internal/common"
)

// Well-known keys in the kv table.
const (
	SessionKey  = "postme_session_userid"
	LettersKey  = "postme_letters"
	ProfilesKey = "postme_profiles"
)

// Local is the device-local store. All letters live as one JSON array
// under LettersKey and all profiles as one JSON object under ProfilesKey,
// so every write is a read-modify-write cycle; the mutex serializes those
// cycles against the background pen-pal goroutine.
type Local struct {
	mu sync.Mutex
	kv kv.Repository
}

func NewLocal(repo kv.Repository) *Local {
	return &Local{kv: repo}
}

func (s *Local) loadLetters(ctx context.Context) ([]models.Letter, error) {
	raw, err := s.kv.Get(ctx, LettersKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var letters []models.Letter
	if err := json.Unmarshal([]byte(raw), &letters); err != nil {
		return nil, fmt.Errorf("decoding letters: %w", err)
	}
	return letters, nil
}

func (s *Local) storeLetters(ctx context.Context, letters []models.Letter) error {
	data, err := json.Marshal(letters)
	if err != nil {
		return fmt.Errorf("encoding letters: %w", err)
	}
	return s.kv.Set(ctx, LettersKey, string(data))
}

func (s *Local) loadProfiles(ctx context.Context) (map[string]models.UserProfile, error) {
	raw, err := s.kv.Get(ctx, ProfilesKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return map[string]models.UserProfile{}, nil
		}
		return nil, err
	}

	profiles := map[string]models.UserProfile{}
	if err := json.Unmarshal([]byte(raw), &profiles); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}
	return profiles, nil
}

func (s *Local) storeProfiles(ctx context.Context, profiles map[string]models.UserProfile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}
	return s.kv.Set(ctx, ProfilesKey, string(data))
}

// Letters returns all letters addressed to userID, newest first.
func (s *Local) Letters(ctx context.Context, userID string) ([]models.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLetters(ctx)
	if err != nil {
		return nil, err
	}

	var inbox []models.Letter
	for _, letter := range all {
		if letter.To == userID {
			inbox = append(inbox, letter)
		}
	}

	sort.SliceStable(inbox, func(i, j int) bool {
		return inbox[i].Timestamp > inbox[j].Timestamp
	})

	return inbox, nil
}

// SaveLetter appends a letter to the store.
func (s *Local) SaveLetter(ctx context.Context, letter *models.Letter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLetters(ctx)
	if err != nil {
		return err
	}

	return s.storeLetters(ctx, append(all, *letter))
}

// MarkRead flags the letter with the given id as read. Unknown ids are a
// no-op.
func (s *Local) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLetters(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			all[i].IsRead = true
		}
	}

	return s.storeLetters(ctx, all)
}

// DeleteLetter removes the letter with the given id. Unknown ids are a
// no-op.
func (s *Local) DeleteLetter(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLetters(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, letter := range all {
		if letter.ID != id {
			kept = append(kept, letter)
		}
	}

	return s.storeLetters(ctx, kept)
}

// GetProfile returns the stored profile for a username or
// common.ErrNotFound.
func (s *Local) GetProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return nil, err
	}

	profile, ok := profiles[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &profile, nil
}

// CreateProfile stores a profile keyed by its user id, overwriting any
// previous entry.
func (s *Local) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.loadProfiles(ctx)
	if err != nil {
		return err
	}

	profiles[profile.UserID] = *profile
	return s.storeProfiles(ctx, profiles)
}
