// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStore tracks which refresh tokens are still honored. Tokens live in
// redis with a TTL matching their expiry, so revocation is a key delete and
// expired tokens clean themselves up.
type TokenStore interface {
	// SaveRefreshToken registers a refresh token with a time-to-live.
	SaveRefreshToken(ctx context.Context, token string, ttl time.Duration) error

	// IsRefreshTokenValid reports whether the token is still honored.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// InvalidateRefreshToken revokes a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error
}

// redisTokenStore implements TokenStore on a redis client.
type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a new redis-backed token store.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{
		client: client,
	}
}

// SaveRefreshToken registers a refresh token with a time-to-live.
func (s *redisTokenStore) SaveRefreshToken(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshTokenKeyPrefix+token, "1", ttl).Err()
}

// IsRefreshTokenValid reports whether the token is still honored.
func (s *redisTokenStore) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InvalidateRefreshToken revokes a refresh token.
func (s *redisTokenStore) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshTokenKeyPrefix+token).Err()
}
