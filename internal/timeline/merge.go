package timeline

import (
	"massageshop/internal/domain"
	"massageshop/pkg/types"
)

// MergedBlock is a run of adjacent slots collapsed into one display block
type MergedBlock struct {
	StartIndex int
	EndIndex   int
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     SlotStatus
	Bookings   []*domain.Booking
}

// MergeAdjacentSlots collapses adjacent slots of the grid into display
// blocks. Free slots always merge with free neighbours; booked slots merge
// only when both are held by exactly the same single booking, so a booking
// spanning several slots renders as one block while overlapping bookings stay
// slot-by-slot.
func MergeAdjacentSlots(slots []Slot) []MergedBlock {
	if len(slots) == 0 {
		return []MergedBlock{}
	}

	merged := make([]MergedBlock, 0, len(slots))

	for i := range slots {
		current := &slots[i]

		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if canMerge(last, current) {
				last.EndIndex = current.Index + 1
				last.EndTime = current.EndTime
				continue
			}
		}

		merged = append(merged, MergedBlock{
			StartIndex: current.Index,
			EndIndex:   current.Index + 1,
			StartTime:  current.StartTime,
			EndTime:    current.EndTime,
			Status:     current.Status,
			Bookings:   current.Bookings,
		})
	}

	return merged
}

func canMerge(last *MergedBlock, current *Slot) bool {
	if last.Status != current.Status {
		return false
	}

	if last.Status == SlotAvailable {
		return true
	}

	// Занятые слоты сливаются только при одном и том же единственном бронировании
	return len(last.Bookings) == 1 &&
		len(current.Bookings) == 1 &&
		last.Bookings[0].ID == current.Bookings[0].ID
}
