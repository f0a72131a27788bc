package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const SessionPrefix = "session:"

// Session is the cached record of a signed-in account, keyed by token hash.
type Session struct {
	UserID        string    `json:"userId"`
	UserType      string    `json:"userType"` // "client" or "sitter"
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveSession caches the session in Redis with a TTL.
func SaveSession(client *redis.Client, tokenHash string, session Session) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, SessionPrefix+tokenHash, data, AuthCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a cached session from Redis.
func GetSession(client *redis.Client, tokenHash string) (*Session, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, SessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a cached session from Redis.
func DeleteSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, SessionPrefix+tokenHash).Err()
}
