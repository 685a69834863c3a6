package domain

import (
	"time"

	"massageshop/pkg/types"
)

// Booking represents a customer booking in the system
type Booking struct {
	ID            int64
	ServiceID     int64
	Date          time.Time        // calendar day of the appointment
	StartTime     types.TimeString // "HH:MM", 24-hour
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	// Denormalized service data, filled by the services JOIN
	ServiceName     string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
}

// Duration returns the booking duration, falling back to
// DefaultDurationMinutes when the stored value is missing or non-positive
func (b *Booking) Duration() int {
	if b.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return b.DurationMinutes
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date *time.Time // nil - все бронирования
}
