package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes parses a "HH:MM" wall-clock string into minutes since midnight.
// Malformed input is a data defect upstream; the error is returned, not swallowed.
func TimeToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	return hour*60 + minute, nil
}

// MinutesToTime formats minutes since midnight as a zero-padded "HH:MM" label.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// HourSlots generates the ordered hour labels for the display window,
// e.g. HourSlots(6, 13) yields "06:00" through "18:00".
func HourSlots(startHour, count int) []string {
	slots := make([]string, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, MinutesToTime((startHour+i)*60))
	}
	return slots
}
