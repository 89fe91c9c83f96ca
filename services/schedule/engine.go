package schedule

import (
	"fmt"

	"roomboard/models"
	"roomboard/utils"
)

// minWidthPercent keeps very short bookings visible: a block is never
// narrower than 15 minutes of an hour cell. Display-only; the clamped
// interval itself is untouched.
const minWidthPercent = 25.0

// BookingsForHour returns the bookings for a room that intersect the hour
// window [hourStart, hourStart+60), each clamped to the window. The
// intersection is half-open: a booking ending exactly on the boundary
// belongs to the previous hour only. Result order follows the input order,
// which fixes left-to-right stacking inside a cell; overlapping bookings
// are kept separate, never merged.
func BookingsForHour(room, hour string, bookings []models.Booking) ([]models.ClampedInterval, error) {
	hourStart, err := utils.TimeToMinutes(hour)
	if err != nil {
		return nil, fmt.Errorf("invalid hour slot: %w", err)
	}
	hourEnd := hourStart + 60

	var out []models.ClampedInterval
	for _, b := range bookings {
		if b.Room != room {
			continue
		}
		start, err := utils.TimeToMinutes(b.Start)
		if err != nil {
			return nil, fmt.Errorf("booking for %s: %w", b.Room, err)
		}
		end, err := utils.TimeToMinutes(b.End)
		if err != nil {
			return nil, fmt.Errorf("booking for %s: %w", b.Room, err)
		}
		if end <= hourStart || start >= hourEnd {
			continue
		}
		out = append(out, models.ClampedInterval{
			Booking:     b,
			StartMinute: max(start, hourStart),
			EndMinute:   min(end, hourEnd),
		})
	}
	return out, nil
}

// BlockKey identifies a rendered block, stable across re-renders of the
// same snapshot. The index disambiguates duplicate bookings in a cell.
func BlockKey(room, start, end, hour string, i int) string {
	return fmt.Sprintf("%s_%s_%s_%s_%d", room, start, end, hour, i)
}

// layoutPercents converts a clamped interval into proportional cell
// coordinates, applying the minimum-width floor.
func layoutPercents(ci models.ClampedInterval, hourStart int) (left, width float64) {
	left = float64(ci.StartMinute-hourStart) / 60 * 100
	width = float64(ci.EndMinute-ci.StartMinute) / 60 * 100
	if width < minWidthPercent {
		width = minWidthPercent
	}
	return left, width
}
