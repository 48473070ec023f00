package letters

import (
	"context"

	"github.com/postmeapp/postme/internal/server/models"
)

// Repository describes persistence operations for Letter rows.
type Repository interface {
	// ListByRecipient returns all letters addressed to the normalized
	// recipient, newest first (timestamp descending).
	ListByRecipient(ctx context.Context, recipient string) ([]models.Letter, error)

	// Insert stores a new letter.
	Insert(ctx context.Context, letter *models.Letter) error

	// MarkRead flips is_read to true. Marking an already-read or missing
	// letter is a no-op.
	MarkRead(ctx context.Context, id string) error

	// Delete removes a letter. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}
