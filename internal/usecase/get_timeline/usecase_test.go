package get_timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massageshop/internal/domain"
	"massageshop/internal/timeline"
	"massageshop/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	gotDate  *time.Time
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.gotDate = filter.Date
	if r.err != nil {
		return nil, r.err
	}
	return r.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mkBooking(id int64, start string, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
	}
}

func TestExecute_BuildsLayout(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			mkBooking(1, "09:00", 60),
			mkBooking(2, "09:15", 30),
		},
	}
	uc := NewUseCase(repo, timeline.DefaultGridParams(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-08-29"})
	require.NoError(t, err)

	// Фильтр по дате дошёл до репозитория
	require.NotNil(t, repo.gotDate)
	assert.Equal(t, "2026-08-29", repo.gotDate.Format(domain.DateFormat))

	// Пересекающиеся бронирования легли в разные дорожки
	assert.Equal(t, 2, resp.Layout.LaneCount)
	assert.Len(t, resp.Layout.Bookings, 2)
	assert.Empty(t, resp.Layout.Unplaced)
	assert.Len(t, resp.Layout.Slots, timeline.DefaultGridParams().SlotCount())
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, timeline.DefaultGridParams(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-08-29"})
	require.NoError(t, err)

	assert.Zero(t, resp.Layout.LaneCount)
	require.Len(t, resp.Layout.AvailableRanges, 1)
	assert.Equal(t, 0, resp.Layout.AvailableRanges[0].StartIndex)
	assert.Equal(t, timeline.DefaultGridParams().SlotCount(), resp.Layout.AvailableRanges[0].EndIndex)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, timeline.DefaultGridParams(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "29.08.2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, timeline.DefaultGridParams(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2026-08-29"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_UnplacedSurfaced(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			mkBooking(1, "07:00", 60), // до открытия
			mkBooking(2, "10:00", 60),
		},
	}
	uc := NewUseCase(repo, timeline.DefaultGridParams(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2026-08-29"})
	require.NoError(t, err)

	require.Len(t, resp.Layout.Unplaced, 1)
	assert.Equal(t, int64(1), resp.Layout.Unplaced[0].ID)
	assert.Len(t, resp.Layout.Bookings, 1)
}
