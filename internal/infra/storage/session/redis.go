package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked:"

// RedisStore хранит отозванные идентификаторы токенов в Redis с TTL до истечения токена
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient создает клиент Redis
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping проверяет соединение с Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrStore, err)
	}
	return nil
}

// Revoke помечает токен отозванным на время ttl
func (s *RedisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Revoke: %v", ErrStore, err)
	}
	return nil
}

// IsRevoked проверяет, отозван ли токен
func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: IsRevoked: %v", ErrStore, err)
	}
	return n > 0, nil
}

// Close закрывает соединение
func (s *RedisStore) Close() error {
	return s.client.Close()
}
