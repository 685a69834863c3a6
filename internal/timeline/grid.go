package timeline

import (
	"massageshop/internal/domain"
	"massageshop/pkg/types"
)

// SlotStatus state of a single grid slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Slot is one fixed-duration bucket of the business-day grid
type Slot struct {
	Index     int
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
	// Bookings overlapping this slot, in input order. Several bookings may
	// share a slot: overbooking is a display concern, not a constraint
	// enforced here.
	Bookings []*domain.Booking
}

// BuildGrid builds the slot grid for a day and tags every slot with the
// bookings overlapping it. Bookings whose start time is malformed or outside
// business hours are not placed; AssignLanes reports those as unplaced.
func BuildGrid(bookings []*domain.Booking, p GridParams) []Slot {
	slotCount := p.SlotCount()

	slots := make([]Slot, slotCount)
	for i := range slots {
		slots[i] = Slot{
			Index:     i,
			StartTime: SlotIndexToTime(i, p),
			EndTime:   SlotIndexToTime(i+1, p),
			Status:    SlotAvailable,
			Bookings:  nil,
		}
	}

	for _, booking := range bookings {
		startIndex := TimeToSlotIndex(booking.StartTime, p)
		if startIndex == InvalidSlotIndex {
			continue
		}

		endIndex := startIndex + slotsNeeded(booking.Duration(), p)

		// Конец бронирования может выходить за закрытие - помечаем
		// только слоты внутри сетки
		for i := startIndex; i < endIndex && i < slotCount; i++ {
			slots[i].Status = SlotBooked
			slots[i].Bookings = append(slots[i].Bookings, booking)
		}
	}

	return slots
}
