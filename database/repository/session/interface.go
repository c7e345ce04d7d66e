package sessionRepo

import (
	"context"
	"errors"
	"time"

	"slotbook/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores login sessions keyed by token hash.
type SessionRepository interface {
	// Save stores the session; the store may drop it on its own after ttl.
	Save(ctx context.Context, session models.AuthSession, ttl time.Duration) error
	// Get returns the session for tokenHash or ErrSessionNotFound.
	Get(ctx context.Context, tokenHash string) (*models.AuthSession, error)
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, tokenHash string) error
	// DeleteExpired removes every session older than ttl at now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
