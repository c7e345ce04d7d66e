package sessionRepo

import (
	"context"
	"testing"
	"time"

	"slotbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseRepository runs the behaviour every SessionRepository must share.
func exerciseRepository(t *testing.T, repo SessionRepository) {
	t.Helper()
	ctx := context.Background()
	ttl := 24 * time.Hour
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("save and get", func(t *testing.T) {
		s := models.AuthSession{TokenHash: "h1", Username: "alice", CreatedAt: now}
		require.NoError(t, repo.Save(ctx, s, ttl))

		got, err := repo.Get(ctx, "h1")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.True(t, got.CreatedAt.Equal(now))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.AuthSession{TokenHash: "h2", Username: "bob", CreatedAt: now}, ttl))
		require.NoError(t, repo.Delete(ctx, "h2"))

		_, err := repo.Get(ctx, "h2")
		assert.ErrorIs(t, err, ErrSessionNotFound)

		assert.NoError(t, repo.Delete(ctx, "h2"))
	})

	t.Run("delete expired", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.AuthSession{TokenHash: "old", Username: "carol", CreatedAt: now.Add(-25 * time.Hour)}, ttl))
		require.NoError(t, repo.Save(ctx, models.AuthSession{TokenHash: "fresh", Username: "dave", CreatedAt: now}, ttl))

		removed, err := repo.DeleteExpired(ctx, now, ttl)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		_, err = repo.Get(ctx, "old")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, err = repo.Get(ctx, "fresh")
		assert.NoError(t, err)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}

func TestMemorySessionRepo(t *testing.T) {
	exerciseRepository(t, NewMemorySessionRepo())
}
