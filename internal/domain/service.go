package domain

import "time"

// Service represents an entry of the fixed service catalog
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Description     *string
	CreatedAt       time.Time
}
