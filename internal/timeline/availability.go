package timeline

import "massageshop/pkg/types"

// AvailabilityRange is a maximal contiguous run of slots with no booking,
// half-open over slot indices
type AvailabilityRange struct {
	StartIndex int
	EndIndex   int
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// ComputeAvailableRanges merges contiguous free slots into single ranges.
// Run-length encoding of the occupancy sequence restricted to free runs:
// ranges come out ordered by StartIndex, disjoint, and together with the
// occupied indices partition [0, SlotCount) exactly.
func ComputeAvailableRanges(laned []LanedBooking, p GridParams) []AvailabilityRange {
	slotCount := p.SlotCount()

	ranges := make([]AvailabilityRange, 0)
	rangeStart := -1

	for i := 0; i < slotCount; i++ {
		occupied := false
		for j := range laned {
			if laned[j].StartIndex <= i && i < laned[j].EndIndex {
				occupied = true
				break
			}
		}

		if !occupied {
			if rangeStart == -1 {
				rangeStart = i
			}
			continue
		}

		if rangeStart != -1 {
			ranges = append(ranges, newRange(rangeStart, i, p))
			rangeStart = -1
		}
	}

	// Открытый диапазон в конце дня
	if rangeStart != -1 {
		ranges = append(ranges, newRange(rangeStart, slotCount, p))
	}

	return ranges
}

func newRange(startIndex, endIndex int, p GridParams) AvailabilityRange {
	return AvailabilityRange{
		StartIndex: startIndex,
		EndIndex:   endIndex,
		StartTime:  SlotIndexToTime(startIndex, p),
		EndTime:    SlotIndexToTime(endIndex, p),
	}
}
