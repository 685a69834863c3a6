package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"massageshop/internal/domain"
)

const (
	servicesKey = "services:catalog"

	// DefaultServicesTTL — срок жизни каталога услуг в кэше.
	DefaultServicesTTL = time.Hour
)

// RedisCache — кэш каталога услуг поверх Redis.
// Каталог сериализуется в JSON и хранится одним ключом с TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultServicesTTL
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCache) GetServices(ctx context.Context) ([]domain.Service, error) {
	payload, err := c.client.Get(ctx, servicesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - redis get: %v", ErrCacheUnavailable, err)
	}

	var services []domain.Service
	if err := json.Unmarshal(payload, &services); err != nil {
		// Битое значение считаем промахом, чтобы его перезаписали
		return nil, ErrCacheMiss
	}

	return services, nil
}

func (c *RedisCache) SetServices(ctx context.Context, services []domain.Service) error {
	payload, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("SetServices - marshal services: %w", err)
	}

	if err := c.client.Set(ctx, servicesKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetServices - redis set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

func (c *RedisCache) InvalidateServices(ctx context.Context) error {
	if err := c.client.Del(ctx, servicesKey).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateServices - redis del: %v", ErrCacheUnavailable, err)
	}
	return nil
}
