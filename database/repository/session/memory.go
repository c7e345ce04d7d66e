package sessionRepo

import (
	"context"
	"sync"
	"time"

	"slotbook/models"
)

// MemorySessionRepo keeps sessions in process memory. Expiry is left to the
// caller and to DeleteExpired.
type MemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]models.AuthSession
}

func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{sessions: make(map[string]models.AuthSession)}
}

func (r *MemorySessionRepo) Save(_ context.Context, session models.AuthSession, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.TokenHash] = session
	return nil
}

func (r *MemorySessionRepo) Get(_ context.Context, tokenHash string) (*models.AuthSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[tokenHash]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (r *MemorySessionRepo) Delete(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, tokenHash)
	return nil
}

func (r *MemorySessionRepo) DeleteExpired(_ context.Context, now time.Time, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for hash, s := range r.sessions {
		if s.Expired(now, ttl) {
			delete(r.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

func (r *MemorySessionRepo) Ping(context.Context) error {
	return nil
}
