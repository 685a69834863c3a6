package timeline

// Default grid parameters for this deployment.
// Kept as defaults only - every function takes GridParams explicitly,
// the values are not hardcoded at call sites.
const (
	DefaultStartHour           = 8
	DefaultEndHour             = 20
	DefaultSlotIntervalMinutes = 30
)

// InvalidSlotIndex sentinel returned by TimeToSlotIndex for a malformed time
// string or a time outside business hours. The sole error signal of the
// package: callers check it and treat the booking as unplaced, no error is
// ever returned.
const InvalidSlotIndex = -1

// GridParams defines the slot grid of a business day
type GridParams struct {
	StartHour           int
	EndHour             int
	SlotIntervalMinutes int
}

// DefaultGridParams returns the deployment defaults (8:00-20:00, 30 minutes)
func DefaultGridParams() GridParams {
	return GridParams{
		StartHour:           DefaultStartHour,
		EndHour:             DefaultEndHour,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
	}
}

// SlotsPerHour returns the number of slots in one hour
func (p GridParams) SlotsPerHour() int {
	return 60 / p.SlotIntervalMinutes
}

// SlotCount returns the total number of slots in the business day
func (p GridParams) SlotCount() int {
	return (p.EndHour - p.StartHour) * p.SlotsPerHour()
}
