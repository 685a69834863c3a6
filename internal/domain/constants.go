package domain

// Default values
const (
	// DefaultDurationMinutes applied when a booking carries a missing or
	// non-positive duration. Display continuity is preferred over strict
	// validation at this layer.
	DefaultDurationMinutes = 60
)

// Business validation constants
const (
	MinCustomerNameLength  = 2
	MaxCustomerNameLength  = 100
	MinCustomerPhoneLength = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
