package get_timeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massageshop/internal/domain"
	"massageshop/internal/timeline"
	getTimeline "massageshop/internal/usecase/get_timeline"
	"massageshop/pkg/types"
)

type fakeUseCase struct {
	resp *getTimeline.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getTimeline.Request) (*getTimeline.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dayLayout(t *testing.T) *getTimeline.Response {
	t.Helper()

	params := timeline.DefaultGridParams()
	bookings := []*domain.Booking{
		{ID: 1, StartTime: types.TimeString("09:00"), DurationMinutes: 60,
			ServiceName: "Relax Massage", Price: 60, CustomerName: "Анна Петрова"},
		{ID: 2, StartTime: types.TimeString("09:15"), DurationMinutes: 30,
			ServiceName: "Deep Tissue Massage", Price: 120, CustomerName: "Иван Сидоров"},
	}

	return &getTimeline.Response{
		Date:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Params: params,
		Layout: timeline.BuildLayout(bookings, params),
	}
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/timeline", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getTimeline.ErrInvalidDate}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/timeline?date=01.09.2026", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Success(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: dayLayout(t)}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/timeline?date=2026-09-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp TimelineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2026-09-01", resp.Date)
	assert.Equal(t, 24, resp.Grid.SlotCount)
	assert.Len(t, resp.Slots, 24)
	assert.Len(t, resp.Heights, 24)

	// Пересекающиеся бронирования в разных дорожках
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, 2, resp.LaneCount)
	assert.Equal(t, 0, resp.Bookings[0].Lane)
	assert.Equal(t, 1, resp.Bookings[1].Lane)
	assert.Equal(t, 2, resp.Bookings[0].StartIndex)
	assert.Equal(t, 4, resp.Bookings[0].EndIndex)

	// Слот 09:00 занят обоими бронированиями
	slot := resp.Slots[2]
	assert.Equal(t, "booked", slot.Status)
	assert.Equal(t, []int64{1, 2}, slot.BookingIDs)

	// Свободные окна по краям дня
	require.Len(t, resp.AvailableRanges, 2)
	assert.Equal(t, "08:00", resp.AvailableRanges[0].StartTime)
	assert.Equal(t, "09:00", resp.AvailableRanges[0].EndTime)

	assert.Empty(t, resp.Unplaced)
}
