// Package store provides session storage backends for JalMitra.
//
// This file implements the Redis-backed session store. Redis applies the idle
// TTL natively per key, so expiry needs no janitor.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/JalMitra/JalMitra/internal/models"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session keys in Redis.
const sessionKeyPrefix = "jalmitra:session:"

// RedisStore persists sessions in Redis with a per-key idle TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis session store at the given address.
func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis ping failed", "error", err, "addr", addr)
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	slog.Info("Redis session store ready", "addr", addr, "ttl", ttl)
	return &RedisStore{client: client, ttl: ttl}, nil
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}

// Get retrieves the session for a user, or nil if none exists.
func (s *RedisStore) Get(ctx context.Context, userID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		slog.Error("RedisStore Get failed", "error", err, "user", userID)
		return nil, fmt.Errorf("failed to fetch session for %s: %w", userID, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		slog.Error("RedisStore Get unmarshal failed", "error", err, "user", userID)
		return nil, fmt.Errorf("failed to decode session for %s: %w", userID, err)
	}
	return &session, nil
}

// Save persists the session for a user and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, userID string, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session for %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, sessionKey(userID), data, s.ttl).Err(); err != nil {
		slog.Error("RedisStore Save failed", "error", err, "user", userID)
		return fmt.Errorf("failed to save session for %s: %w", userID, err)
	}
	return nil
}

// Delete removes the session for a user.
func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		slog.Error("RedisStore Delete failed", "error", err, "user", userID)
		return fmt.Errorf("failed to delete session for %s: %w", userID, err)
	}
	return nil
}

// Count returns the number of stored sessions.
func (s *RedisStore) Count(ctx context.Context) (int, error) {
	var count int
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, sessionKeyPrefix+"*", 1000).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to scan sessions: %w", err)
		}
		count += len(keys)
		if next == 0 {
			return count, nil
		}
		cursor = next
	}
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
