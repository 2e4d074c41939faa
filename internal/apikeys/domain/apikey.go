package domain

import "time"

// APIKey is the server-to-server credential for one user. A user has at most
// one key at a time; Regenerate replaces it atomically with no grace period.
type APIKey struct {
	UserID    string
	Key       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
