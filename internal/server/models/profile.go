package models

// Profile is the persistent identity record for a username. The username is
// stored normalized (lowercase, trimmed) and acts as the primary key.
type Profile struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
