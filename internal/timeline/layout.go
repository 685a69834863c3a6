// Package timeline converts a day's bookings into a conflict-free timeline
// layout: a fixed slot grid with occupancy tagging, first-fit lane packing of
// concurrent bookings, merged availability ranges and display-height hints.
//
// The package is a pure function of (bookings, grid parameters): no I/O, no
// shared state, safe for concurrent use. Identical input always yields
// identical output; every layout is recomputed from scratch.
package timeline

import "massageshop/internal/domain"

// Layout is the full derived layout of one business day
type Layout struct {
	Slots           []Slot
	Bookings        []LanedBooking
	LaneCount       int
	AvailableRanges []AvailabilityRange
	Blocks          []MergedBlock
	Heights         []SlotHeight
	// Unplaced holds bookings that could not be put on the grid: malformed
	// start time or start outside business hours. Surfaced so the caller can
	// flag discarded records instead of losing them.
	Unplaced []*domain.Booking
}

// BuildLayout runs the whole pipeline over a single day's bookings
func BuildLayout(bookings []*domain.Booking, p GridParams) *Layout {
	slots := BuildGrid(bookings, p)
	laned, laneCount, unplaced := AssignLanes(bookings, p)

	return &Layout{
		Slots:           slots,
		Bookings:        laned,
		LaneCount:       laneCount,
		AvailableRanges: ComputeAvailableRanges(laned, p),
		Blocks:          MergeAdjacentSlots(slots),
		Heights:         SlotHeights(laned, p),
		Unplaced:        unplaced,
	}
}
