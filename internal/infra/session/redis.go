package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "admin_session:"

// RedisStore хранилище сессий в Redis.
// TTL ключа совпадает со сроком жизни сессии, протухшие
// сессии Redis удаляет сам.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore создает хранилище поверх существующего клиента Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// Set сохраняет сессию с TTL до её ExpiresAt
func (s *RedisStore) Set(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: marshal session: %v", ErrStoreUnavailable, err)
	}

	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, redisKeyPrefix+sess.Token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Get возвращает живую сессию по токену
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrStoreUnavailable, err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("%w: unmarshal session: %v", ErrStoreUnavailable, err)
	}

	if sess.IsExpired(s.now()) {
		return nil, ErrNotFound
	}

	return &sess, nil
}

// Delete удаляет сессию
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrStoreUnavailable, err)
	}
	return nil
}
