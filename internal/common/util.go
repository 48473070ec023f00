package common

import "strings"

// NormalizeUsername lowercases and trims a free-form username. Every
// recipient and profile key goes through this before it is stored or
// compared.
func NormalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}
