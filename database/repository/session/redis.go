package sessionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"slotbook/models"
	"slotbook/utils"

	"github.com/go-redis/redis/v8"
)

// RedisSessionRepo stores sessions as JSON under utils.AuthSessionPrefix+tokenHash
// with a key TTL equal to the token lifetime.
type RedisSessionRepo struct {
	client *redis.Client
}

func NewRedisSessionRepo(client *redis.Client) *RedisSessionRepo {
	return &RedisSessionRepo{client: client}
}

func sessionKey(tokenHash string) string {
	return utils.AuthSessionPrefix + tokenHash
}

// Save saves the authentication session in Redis with a TTL.
func (r *RedisSessionRepo) Save(ctx context.Context, session models.AuthSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.TokenHash), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// Get retrieves the authentication session from Redis.
func (r *RedisSessionRepo) Get(ctx context.Context, tokenHash string) (*models.AuthSession, error) {
	return r.get(ctx, sessionKey(tokenHash))
}

func (r *RedisSessionRepo) get(ctx context.Context, key string) (*models.AuthSession, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get auth session: %w", err)
	}
	var session models.AuthSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// Delete removes an authentication session from Redis.
func (r *RedisSessionRepo) Delete(ctx context.Context, tokenHash string) error {
	if err := r.client.Del(ctx, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("failed to delete auth session: %w", err)
	}
	return nil
}

// DeleteExpired scans all session keys. Redis already drops keys whose TTL ran
// out; this catches sessions saved under a longer TTL than the current one.
func (r *RedisSessionRepo) DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	removed := 0
	iter := r.client.Scan(ctx, 0, utils.AuthSessionPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		session, err := r.get(ctx, key)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return removed, err
		}
		if !session.Expired(now, ttl) {
			continue
		}
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return removed, fmt.Errorf("failed to delete auth session: %w", err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to scan auth sessions: %w", err)
	}
	return removed, nil
}

func (r *RedisSessionRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
