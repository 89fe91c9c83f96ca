package schedule

import "roomboard/utils"

// Window describes the displayed slice of the day: SlotCount hourly columns
// starting at StartHour. The default board shows 06:00 through 18:00.
type Window struct {
	StartHour int
	SlotCount int
}

// DefaultWindow is the 06:00–18:00 board.
func DefaultWindow() Window {
	return Window{StartHour: 6, SlotCount: 13}
}

// Slots returns the ordered hour labels for the window.
func (w Window) Slots() []string {
	return utils.HourSlots(w.StartHour, w.SlotCount)
}

// StartMinutes is the window's first displayed minute.
func (w Window) StartMinutes() int {
	return w.StartHour * 60
}

// EndMinutes is the minute the last slot's column begins. The indicator
// clamps visibility against this nominal end, so it disappears when the
// final hour slot starts rather than when it ends.
func (w Window) EndMinutes() int {
	return (w.StartHour + w.SlotCount - 1) * 60
}

// NominalColumnBounds returns SlotCount+1 evenly spaced boundary percents,
// used when the display client supplies no measured layout.
func (w Window) NominalColumnBounds() []float64 {
	bounds := make([]float64, w.SlotCount+1)
	for i := range bounds {
		bounds[i] = float64(i) / float64(w.SlotCount) * 100
	}
	return bounds
}
