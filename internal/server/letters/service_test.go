package letters

import (
	"context"
	"testing"

	"github.com/postmeapp/postme/internal/common"
	"github.com/postmeapp/postme/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	listResp []models.Letter
	listErr  error

	inserted []*models.Letter

	lastRecipient string
}

func (f *fakeRepo) ListByRecipient(ctx context.Context, recipient string) ([]models.Letter, error) {
	f.lastRecipient = recipient
	return f.listResp, f.listErr
}

func (f *fakeRepo) Insert(ctx context.Context, l *models.Letter) error {
	f.inserted = append(f.inserted, l)
	return nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, id string) error { return nil }
func (f *fakeRepo) Delete(ctx context.Context, id string) error   { return nil }

func TestList_NormalizesRecipient(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	_, err := s.List(context.Background(), "  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", repo.lastRecipient)
}

func TestList_EmptyUsername(t *testing.T) {
	s := NewService(&fakeRepo{})

	_, err := s.List(context.Background(), "   ")
	assert.ErrorIs(t, err, common.ErrEmptyUsername)
}

func TestSave_NormalizesAndValidates(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	l := &models.Letter{ID: "l1", From: "bob", To: " ALICE ", Content: "Hi!", Timestamp: 1, Color: "bg-pink-100"}
	require.NoError(t, s.Save(context.Background(), l))

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "alice", repo.inserted[0].To)
}

func TestSave_RejectsUnknownColor(t *testing.T) {
	s := NewService(&fakeRepo{})

	l := &models.Letter{ID: "l1", From: "bob", To: "alice", Content: "Hi!", Timestamp: 1, Color: "bg-mauve-500"}
	err := s.Save(context.Background(), l)
	assert.ErrorIs(t, err, common.ErrInvalidColor)
}

func TestSave_RejectsEmptyContent(t *testing.T) {
	s := NewService(&fakeRepo{})

	l := &models.Letter{ID: "l1", From: "bob", To: "alice", Color: "bg-pink-100"}
	err := s.Save(context.Background(), l)
	assert.ErrorIs(t, err, common.ErrEmptyContent)
}

func TestSave_AcceptsMagicColor(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo)

	l := &models.Letter{ID: "l1", From: common.BotSenderName, To: "alice", Content: "hello", Timestamp: 1, Color: common.MagicLetterColor, IsMagic: true}
	require.NoError(t, s.Save(context.Background(), l))
	require.Len(t, repo.inserted, 1)
}
