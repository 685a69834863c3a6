package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massageshop/internal/domain"
)

func TestAssignLanes_OverlappingBookingsGetDistinctLanes(t *testing.T) {
	p := testParams()
	bookings := []*domain.Booking{
		mkBooking(1, "09:00", 60), // слоты [2,4)
		mkBooking(2, "09:15", 30), // слоты [2,3)
	}

	laned, laneCount, unplaced := AssignLanes(bookings, p)

	require.Len(t, laned, 2)
	assert.Empty(t, unplaced)
	assert.Equal(t, 2, laneCount)

	assert.Equal(t, 2, laned[0].StartIndex)
	assert.Equal(t, 4, laned[0].EndIndex)
	assert.Equal(t, 0, laned[0].Lane)

	assert.Equal(t, 2, laned[1].StartIndex)
	assert.Equal(t, 3, laned[1].EndIndex)
	assert.Equal(t, 1, laned[1].Lane)
}

func TestAssignLanes_NonOverlappingShareLaneZero(t *testing.T) {
	p := testParams()
	bookings := []*domain.Booking{
		mkBooking(1, "09:00", 30),
		mkBooking(2, "10:00", 30),
	}

	laned, laneCount, _ := AssignLanes(bookings, p)

	require.Len(t, laned, 2)
	assert.Equal(t, 1, laneCount)
	assert.Equal(t, 0, laned[0].Lane)
	assert.Equal(t, 0, laned[1].Lane)
}

func TestAssignLanes_AdjacentBookingsDoNotConflict(t *testing.T) {
	p := testParams()
	// Полуинтервалы: конец одного ровно на начале другого - не пересечение
	bookings := []*domain.Booking{
		mkBooking(1, "09:00", 60), // [2,4)
		mkBooking(2, "10:00", 60), // [4,6)
	}

	_, laneCount, _ := AssignLanes(bookings, p)

	assert.Equal(t, 1, laneCount)
}

func TestAssignLanes_FirstFitReusesFreedLane(t *testing.T) {
	p := testParams()
	bookings := []*domain.Booking{
		mkBooking(1, "09:00", 120), // [2,6) lane 0
		mkBooking(2, "09:30", 30),  // [3,4) lane 1
		mkBooking(3, "10:30", 30),  // [5,6) снова lane 1 - первый свободный
	}

	laned, laneCount, _ := AssignLanes(bookings, p)

	require.Len(t, laned, 3)
	assert.Equal(t, 2, laneCount)
	assert.Equal(t, 0, laned[0].Lane)
	assert.Equal(t, 1, laned[1].Lane)
	assert.Equal(t, 1, laned[2].Lane)
}

func TestAssignLanes_UnclampedEndIndex(t *testing.T) {
	p := testParams()
	b := mkBooking(1, "19:45", 60)

	laned, laneCount, unplaced := AssignLanes([]*domain.Booking{b}, p)

	require.Len(t, laned, 1)
	assert.Empty(t, unplaced)
	assert.Equal(t, 1, laneCount)

	// Для отображения честно сообщаем реальный конец за пределами сетки
	assert.Equal(t, 23, laned[0].StartIndex)
	assert.Equal(t, 25, laned[0].EndIndex)
	assert.Equal(t, 2, laned[0].SlotsSpan)
}

func TestAssignLanes_ReportsUnplaced(t *testing.T) {
	p := testParams()
	valid := mkBooking(1, "09:00", 30)
	tooEarly := mkBooking(2, "06:00", 30)
	malformed := mkBooking(3, "9am", 30)

	laned, laneCount, unplaced := AssignLanes([]*domain.Booking{valid, tooEarly, malformed}, p)

	require.Len(t, laned, 1)
	assert.Equal(t, 1, laneCount)
	require.Len(t, unplaced, 2)
	assert.Same(t, tooEarly, unplaced[0])
	assert.Same(t, malformed, unplaced[1])
}

func TestAssignLanes_InputOrderDeterminesPacking(t *testing.T) {
	p := testParams()
	// Несортированный вход: жадная упаковка может открыть больше дорожек,
	// чем хроматический минимум - это задокументированная политика
	unsorted := []*domain.Booking{
		mkBooking(1, "10:00", 30),  // [4,5)
		mkBooking(2, "09:00", 120), // [2,6)
		mkBooking(3, "11:00", 30),  // [6,7)
	}

	_, unsortedLanes, _ := AssignLanes(unsorted, p)
	_, sortedLanes, _ := AssignLanes(SortByStart(unsorted), p)

	assert.Equal(t, 2, unsortedLanes)
	assert.Equal(t, 2, sortedLanes)
}

func TestSortByStart_StableAndNonMutating(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, "12:00", 30),
		mkBooking(2, "09:00", 30),
		mkBooking(3, "09:00", 60),
	}

	sorted := SortByStart(bookings)

	require.Len(t, sorted, 3)
	assert.Equal(t, int64(2), sorted[0].ID)
	assert.Equal(t, int64(3), sorted[1].ID, "ties keep input order")
	assert.Equal(t, int64(1), sorted[2].ID)

	// Исходный слайс не изменён
	assert.Equal(t, int64(1), bookings[0].ID)
}
