package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares the flag between machines through Redis.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ FlagStore = (*RedisStore)(nil)

// NewRedisStore creates a store for the server at addr
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context) (bool, error) {
	value, err := r.client.Get(ctx, AdvancedUnlockedKey).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis key not found", "key", AdvancedUnlockedKey)
		return false, nil
	}
	if err != nil {
		r.logger.Error("Redis GET failed", "key", AdvancedUnlockedKey, "error", err)
		return false, fmt.Errorf("redis get failed: %w", err)
	}
	return value == "1", nil
}

func (r *RedisStore) Save(ctx context.Context, unlocked bool) error {
	value := "0"
	if unlocked {
		value = "1"
	}
	if err := r.client.Set(ctx, AdvancedUnlockedKey, value, 0).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", AdvancedUnlockedKey, "error", err)
		return fmt.Errorf("redis set failed: %w", err)
	}
	r.logger.Debug("Redis SET successful", "key", AdvancedUnlockedKey)
	return nil
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}
