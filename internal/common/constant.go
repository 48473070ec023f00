// Package common contains shared constants and sentinel errors used across
// PostMe components.
package common

// AccessKeyHeaderName is the HTTP header carrying the backend access key on
// every API request.
const AccessKeyHeaderName = "X-Postme-Key"

// DefaultAvatar is assigned to every profile at creation and never changed.
const DefaultAvatar = "💌"

// BotSenderName is the fixed "from" identity on generated pen-pal replies.
const BotSenderName = "PostBot"

// BotReplyOffsetMillis is added to the original letter's timestamp so the
// reply always sorts strictly after it.
const BotReplyOffsetMillis = 2000

// MagicLetterColor is the color tag used on bot-generated replies.
const MagicLetterColor = "bg-white"

// BotUsernames are the reserved recipients that trigger a generated reply.
// Matching is done on the normalized recipient username.
var BotUsernames = map[string]struct{}{
	"postbot":   {},
	"stardust":  {},
	"gigglebot": {},
}

// LetterColors is the closed set of color tags a user may pick when
// composing. MagicLetterColor is additionally accepted on save so bot
// replies round-trip.
var LetterColors = []string{
	"bg-red-50",
	"bg-pink-100",
	"bg-blue-100",
	"bg-green-100",
	"bg-yellow-100",
	"bg-purple-100",
}

// IsBotUsername reports whether the normalized username is one of the
// reserved pen-pal recipients.
func IsBotUsername(username string) bool {
	_, ok := BotUsernames[username]
	return ok
}

// ValidLetterColor reports whether c belongs to the allowed color set.
func ValidLetterColor(c string) bool {
	if c == MagicLetterColor {
		return true
	}
	for _, known := range LetterColors {
		if c == known {
			return true
		}
	}
	return false
}
