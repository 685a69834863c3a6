package cache

import (
	"context"

	"massageshop/internal/domain"
)

// NoopCache используется, когда Redis выключен в конфигурации:
// каждое чтение — промах, запись ничего не делает.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) GetServices(_ context.Context) ([]domain.Service, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) SetServices(_ context.Context, _ []domain.Service) error {
	return nil
}

func (NoopCache) InvalidateServices(_ context.Context) error {
	return nil
}
