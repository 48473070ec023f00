// Package models defines client-side data models used by the PostMe CLI.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/postmeapp/postme/internal/common"
)

// Letter is a single addressed message. JSON field names match the wire
// format and the local fallback layout.
type Letter struct {
	// ID is a globally unique identifier, generated at creation.
	ID string `json:"id"`

	// From is the sender username as typed.
	From string `json:"from"`

	// To is the recipient username, normalized at creation.
	To string `json:"to"`

	// Content is the letter body, immutable after send.
	Content string `json:"content"`

	// Timestamp is the creation time in epoch milliseconds. It is the sole
	// inbox sort key, descending.
	Timestamp int64 `json:"timestamp"`

	// Color selects a presentation style from the closed color set.
	Color string `json:"color"`

	// IsRead starts false and transitions to true exactly once.
	IsRead bool `json:"isRead"`

	// IsMagic marks bot-generated replies.
	IsMagic bool `json:"isMagic,omitempty"`
}

// NewLetter builds a letter ready to save: fresh id, normalized recipient,
// current timestamp, unread.
func NewLetter(from, to, content, color string) *Letter {
	return &Letter{
		ID:        uuid.NewString(),
		From:      from,
		To:        common.NormalizeUsername(to),
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
		Color:     color,
	}
}

// NewBotReply builds the generated pen-pal answer to original: fixed sender
// identity, addressed back to the original sender, magic-flagged, and
// timestamped strictly after the original.
func NewBotReply(original *Letter, content string) *Letter {
	return &Letter{
		ID:        uuid.NewString(),
		From:      common.BotSenderName,
		To:        common.NormalizeUsername(original.From),
		Content:   content,
		Timestamp: original.Timestamp + common.BotReplyOffsetMillis,
		Color:     common.MagicLetterColor,
		IsMagic:   true,
	}
}
