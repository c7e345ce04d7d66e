// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"slotbook/config"

	"github.com/go-redis/redis/v8"
)

// NewAuthCacheClient connects to the Redis database that holds auth sessions
// and verifies the connection with a ping.
func NewAuthCacheClient(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisAuthDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Auth Cache) at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
