package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massageshop/internal/domain"
	"massageshop/internal/infra/cache"
	serviceRepo "massageshop/internal/infra/storage/service"
	"massageshop/pkg/ptr"
)

type fakeServiceRepo struct {
	services []*domain.Service
	calls    int
}

func (r *fakeServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	r.calls++
	return r.services, nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	for _, svc := range r.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, serviceRepo.ErrServiceNotFound
}

// fakeCache поведение как у RedisCache, но в памяти
type fakeCache struct {
	services []domain.Service
	warm     bool
	err      error
}

func (c *fakeCache) GetServices(_ context.Context) ([]domain.Service, error) {
	if c.err != nil {
		return nil, c.err
	}
	if !c.warm {
		return nil, cache.ErrCacheMiss
	}
	return c.services, nil
}

func (c *fakeCache) SetServices(_ context.Context, services []domain.Service) error {
	if c.err != nil {
		return c.err
	}
	c.services = services
	c.warm = true
	return nil
}

func (c *fakeCache) InvalidateServices(_ context.Context) error {
	c.warm = false
	c.services = nil
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() []*domain.Service {
	return []*domain.Service{
		{ID: 1, Name: "Relax Massage", DurationMinutes: 30, Price: 60,
			Description: ptr.Ptr("Gentle relaxation massage to relieve stress and tension")},
		{ID: 2, Name: "Deep Tissue Massage", DurationMinutes: 60, Price: 120},
		{ID: 3, Name: "Hot Stone Massage", DurationMinutes: 90, Price: 180},
	}
}

func TestList_WarmsCacheOnMiss(t *testing.T) {
	ctx := context.Background()
	repo := &fakeServiceRepo{services: testCatalog()}
	c := &fakeCache{}
	svc := NewService(repo, c, nopLogger{})

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, repo.calls)
	assert.True(t, c.warm)

	// Повторный вызов идёт в кэш, репозиторий не трогается
	resp, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, repo.calls)
}

func TestList_FallsBackWhenCacheUnavailable(t *testing.T) {
	repo := &fakeServiceRepo{services: testCatalog()}
	c := &fakeCache{err: cache.ErrCacheUnavailable}
	svc := NewService(repo, c, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, repo.calls)
}

func TestList_ResponseShape(t *testing.T) {
	repo := &fakeServiceRepo{services: testCatalog()}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	first := resp.Services[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Relax Massage", first.Name)
	assert.Equal(t, 30, first.DurationMinutes)
	assert.Equal(t, 60.0, first.Price)
	require.NotNil(t, first.Description)

	// У услуги без описания поле отсутствует
	assert.Nil(t, resp.Services[1].Description)
}

func TestGetByID(t *testing.T) {
	repo := &fakeServiceRepo{services: testCatalog()}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Deep Tissue Massage", resp.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetByID_InternalError(t *testing.T) {
	repo := &errorServiceRepo{}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

type errorServiceRepo struct{}

func (errorServiceRepo) List(context.Context) ([]*domain.Service, error) {
	return nil, errors.New("connection refused")
}

func (errorServiceRepo) GetByID(context.Context, int64) (*domain.Service, error) {
	return nil, errors.New("connection refused")
}
