package catalog

import (
	"context"
	"errors"
	"fmt"

	"massageshop/internal/domain"
	"massageshop/internal/infra/cache"
	serviceRepo "massageshop/internal/infra/storage/service"
	"massageshop/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	cache       ServicesCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	servicesCache ServicesCache,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		cache:       servicesCache,
		logger:      logger,
	}
}

// List возвращает каталог услуг, отсортированный по длительности.
// Сначала пробует кэш, при промахе читает из БД и прогревает кэш.
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	cached, err := s.cache.GetServices(ctx)
	if err == nil {
		s.logger.Info("List: returning %d services from cache", len(cached))
		return models.FromDomainServiceList(cached), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// Кэш недоступен — не ошибка для клиента, идём в БД
		s.logger.Warn("List: cache error, falling back to database: %v", err)
	}

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	flat := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		flat = append(flat, *svc)
	}

	if err := s.cache.SetServices(ctx, flat); err != nil {
		s.logger.Warn("List: failed to warm cache: %v", err)
	}

	s.logger.Info("List: returning %d services from database", len(flat))
	return models.FromDomainServiceList(flat), nil
}

// GetByID возвращает услугу по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}
