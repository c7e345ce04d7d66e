package models

import "time"

// AuthSession records a login. The raw token is never stored, only its hash.
type AuthSession struct {
	TokenHash string    `json:"tokenHash"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session is older than ttl at now.
// A session exactly ttl old is still valid.
func (s AuthSession) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}
