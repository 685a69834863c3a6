package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massageshop/internal/domain"
	bookingRepo "massageshop/internal/infra/storage/booking"
	"massageshop/internal/service/bookings/models"
	"massageshop/pkg/ptr"
	"massageshop/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	gotDate  *time.Time
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.gotDate = filter.Date
	if filter.Date == nil {
		return r.bookings, nil
	}
	var filtered []*domain.Booking
	for _, b := range r.bookings {
		if b.Date.Equal(*filter.Date) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBookings() []*domain.Booking {
	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	return []*domain.Booking{
		{ID: 1, ServiceID: 1, Date: day1, StartTime: types.TimeString("10:00"),
			ServiceName: "Relax Massage", DurationMinutes: 30, Price: 60,
			CustomerName: "Анна Петрова", CustomerEmail: "anna@example.com",
			CustomerPhone: "+79001234567", CreatedAt: day1},
		{ID: 2, ServiceID: 2, Date: day2, StartTime: types.TimeString("14:00"),
			ServiceName: "Deep Tissue Massage", DurationMinutes: 60, Price: 120,
			CustomerName: "Иван Сидоров", CustomerEmail: "ivan@example.com",
			CustomerPhone: "+79007654321", CreatedAt: day2},
	}
}

func TestList_All(t *testing.T) {
	repo := &fakeBookingRepo{bookings: testBookings()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Nil(t, repo.gotDate)
}

func TestList_ByDate(t *testing.T) {
	repo := &fakeBookingRepo{bookings: testBookings()}
	svc := NewService(repo, nopLogger{})

	req := &models.ListBookingsRequest{
		Date: ptr.Ptr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
	}
	resp, err := svc.List(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	got := resp.Bookings[0]
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "2026-09-01", got.Date)
	assert.Equal(t, "10:00", got.StartTime)
	assert.Equal(t, "Relax Massage", got.ServiceName)
	assert.Equal(t, 30, got.DurationMinutes)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
