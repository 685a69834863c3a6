package timeline

import "massageshop/pkg/types"

// TimeToSlotIndex maps a wall-clock time onto its slot index.
// Returns InvalidSlotIndex when the time does not parse as HH:MM or the
// resulting index lies outside [0, SlotCount). A booking outside business
// hours is an expected condition, not an error.
func TimeToSlotIndex(t types.TimeString, p GridParams) int {
	hours, minutes, err := t.Clock()
	if err != nil {
		return InvalidSlotIndex
	}

	// Целочисленное деление в Go усекает к нулю, поэтому считаем
	// по часам и минутам раздельно: для времени раньше StartHour
	// часовая часть уходит в минус и индекс получается отрицательным
	index := (hours-p.StartHour)*p.SlotsPerHour() + minutes/p.SlotIntervalMinutes

	if index < 0 || index >= p.SlotCount() {
		return InvalidSlotIndex
	}

	return index
}

// SlotIndexToTime maps a slot index back to the wall-clock time of its left
// boundary. Pure arithmetic, defined for any index - it is intentionally
// called with index == SlotCount for the closing boundary of the last slot.
func SlotIndexToTime(index int, p GridParams) types.TimeString {
	return types.FromMinutes(p.StartHour*60 + index*p.SlotIntervalMinutes)
}

// slotsNeeded returns how many grid slots a booking covers, minimum 1
func slotsNeeded(durationMinutes int, p GridParams) int {
	n := (durationMinutes + p.SlotIntervalMinutes - 1) / p.SlotIntervalMinutes
	if n < 1 {
		n = 1
	}
	return n
}
