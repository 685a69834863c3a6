package bookings

import (
	"context"
	"errors"
	"fmt"

	"massageshop/internal/domain"
	bookingRepo "massageshop/internal/infra/storage/booking"
	"massageshop/internal/service/bookings/models"
)

// Service сервис для работы со списком бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает бронирования с опциональным фильтром по дате.
// Без даты — все бронирования, новые первыми.
// С датой — бронирования этого дня по возрастанию времени начала.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Date != nil {
		s.logger.Info("List: fetching bookings for date=%s", req.Date.Format(domain.DateFormat))
	} else {
		s.logger.Info("List: fetching all bookings")
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{Date: req.Date})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}
