package timeline

// SlotHeight display-height signal for a slot. A numeric hint for the
// rendering layer, no pixel values here.
type SlotHeight string

const (
	HeightStandard SlotHeight = "standard"
	HeightExpanded SlotHeight = "expanded"
)

// SlotHeights computes the display height of every slot. A slot is expanded
// only when every booking starting exactly at it spans a single slot; one
// multi-slot booking starting there keeps the standard height, as does a slot
// where nothing starts.
func SlotHeights(laned []LanedBooking, p GridParams) []SlotHeight {
	heights := make([]SlotHeight, p.SlotCount())

	for i := range heights {
		starting := 0
		allSingleSlot := true

		for j := range laned {
			if laned[j].StartIndex != i {
				continue
			}
			starting++
			if laned[j].SlotsSpan != 1 {
				allSingleSlot = false
			}
		}

		if starting > 0 && allSingleSlot {
			heights[i] = HeightExpanded
		} else {
			heights[i] = HeightStandard
		}
	}

	return heights
}
