package create_booking

import (
	"context"
	"errors"
	"fmt"

	"massageshop/internal/domain"
	serviceRepo "massageshop/internal/infra/storage/service"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Пересечение с другими бронированиями не проверяется: параллельные записи
// допустимы, таймлайн раскладывает их по дорожкам при отображении.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s, customer=%s",
		req.ServiceID, req.Date, req.StartTime, req.CustomerName)

	// 1. Форматная валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время для проверки даты
	now := uc.timeProvider.Now()

	// 3. Дата бронирования: формат и не в прошлом
	date, err := parseDate(req.Date, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	// 4. Время начала: формат HH:MM
	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time %q: %v", req.StartTime, err)
		return nil, err
	}

	var result *domain.Booking

	// 5. Проверка услуги и вставка — в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			ServiceID:       service.ID,
			Date:            date,
			StartTime:       startTime,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ServiceName:     service.Name,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.Price,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		CreatedAt:       result.CreatedAt,
	}, nil
}
