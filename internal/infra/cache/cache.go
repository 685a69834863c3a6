package cache

import (
	"context"
	"errors"

	"massageshop/internal/domain"
)

var (
	// ErrCacheMiss — в кэше нет запрошенного значения.
	ErrCacheMiss = errors.New("cache miss")
	// ErrCacheUnavailable — кэш недоступен (ошибка соединения и т.п.).
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// ServicesCache хранит каталог услуг целиком одним значением.
type ServicesCache interface {
	GetServices(ctx context.Context) ([]domain.Service, error)
	SetServices(ctx context.Context, services []domain.Service) error
	InvalidateServices(ctx context.Context) error
}
