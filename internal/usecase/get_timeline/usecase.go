package get_timeline

import (
	"context"
	"fmt"
	"time"

	"massageshop/internal/domain"
	"massageshop/internal/timeline"
)

// UseCase use case для построения таймлайна дня
type UseCase struct {
	bookingRepo BookingRepository
	params      timeline.GridParams
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, params timeline.GridParams, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		params:      params,
		logger:      logger,
	}
}

// Execute строит раскладку дня: бронирования выбранной даты прогоняются
// через конвейер сетка → дорожки → свободные окна → блоки → высоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetTimeline: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	uc.logger.Info("GetTimeline: building layout for date=%s", req.Date)

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{Date: &date})
	if err != nil {
		uc.logger.Error("GetTimeline: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	layout := timeline.BuildLayout(bookings, uc.params)

	if len(layout.Unplaced) > 0 {
		uc.logger.Warn("GetTimeline: %d bookings outside business hours for date=%s",
			len(layout.Unplaced), req.Date)
	}

	uc.logger.Info("GetTimeline: date=%s, bookings=%d, lanes=%d, free ranges=%d",
		req.Date, len(bookings), layout.LaneCount, len(layout.AvailableRanges))

	return &Response{
		Date:   date,
		Params: uc.params,
		Layout: layout,
	}, nil
}
