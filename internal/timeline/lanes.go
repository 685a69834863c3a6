package timeline

import (
	"sort"

	"massageshop/internal/domain"
)

// LanedBooking is a booking placed on the timeline: its half-open slot range
// [StartIndex, EndIndex) and the lane it renders in. EndIndex is deliberately
// not clamped to the grid - a booking overrunning closing time reports its
// real extent.
type LanedBooking struct {
	*domain.Booking

	StartIndex int
	EndIndex   int
	Lane       int
	SlotsSpan  int
}

// overlaps half-open interval overlap test
func (b *LanedBooking) overlaps(startIndex, endIndex int) bool {
	return !(endIndex <= b.StartIndex || startIndex >= b.EndIndex)
}

// AssignLanes packs bookings into parallel lanes so that no two bookings in a
// lane overlap in time. First-fit greedy in input order: each booking takes
// the lowest-indexed free lane, a new lane opens only when none is free.
//
// Input order determines the packing. Greedy first-fit over an unsorted list
// is not guaranteed to produce the chromatic minimum number of lanes; callers
// wanting minimum-lane output pre-sort with SortByStart. The order is
// preserved here for predictability.
//
// Bookings that cannot be placed (malformed time, outside business hours) are
// returned in unplaced rather than silently dropped.
func AssignLanes(bookings []*domain.Booking, p GridParams) (laned []LanedBooking, laneCount int, unplaced []*domain.Booking) {
	// lanes[i] - бронирования, уже размещенные в i-й дорожке
	var lanes [][]*LanedBooking

	laned = make([]LanedBooking, 0, len(bookings))

	for _, booking := range bookings {
		startIndex := TimeToSlotIndex(booking.StartTime, p)
		if startIndex == InvalidSlotIndex {
			unplaced = append(unplaced, booking)
			continue
		}

		span := slotsNeeded(booking.Duration(), p)
		endIndex := startIndex + span

		assigned := -1
		for i, lane := range lanes {
			free := true
			for _, placed := range lane {
				if placed.overlaps(startIndex, endIndex) {
					free = false
					break
				}
			}
			if free {
				assigned = i
				break
			}
		}

		if assigned == -1 {
			assigned = len(lanes)
			lanes = append(lanes, nil)
		}

		laned = append(laned, LanedBooking{
			Booking:    booking,
			StartIndex: startIndex,
			EndIndex:   endIndex,
			Lane:       assigned,
			SlotsSpan:  span,
		})
		lanes[assigned] = append(lanes[assigned], &laned[len(laned)-1])
	}

	return laned, len(lanes), unplaced
}

// SortByStart returns a copy of bookings ordered by start time. Optional
// pre-processing step for callers wanting minimum-lane packing from
// AssignLanes; ties keep input order.
func SortByStart(bookings []*domain.Booking) []*domain.Booking {
	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})
	return sorted
}
