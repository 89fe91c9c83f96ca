package schedule

import "roomboard/models"

// Now computes the current-time marker against the display window.
// Visibility is inclusive at both ends of [StartMinutes, EndMinutes]; at
// the nominal end the marker sits on the last column's left edge and
// vanishes a minute later. The horizontal position interpolates linearly
// between the two column boundaries enclosing the current hour, so
// measured boundaries from a real layout place it exactly even when
// columns are not uniform.
func (s *DefaultBoardService) Now(measuredBounds []float64) models.NowIndicator {
	now := s.Clock.Now().In(s.Zone)
	nowMin := NowMinutes(s.Clock, s.Zone)

	ind := models.NowIndicator{
		NowMinutes: nowMin,
		ClockLabel: now.Format("2006-01-02 15:04:05"),
	}
	if nowMin < s.Window.StartMinutes() || nowMin > s.Window.EndMinutes() {
		return ind
	}

	bounds := s.columnBounds(measuredBounds)
	offset := nowMin - s.Window.StartMinutes()
	idx := offset / 60
	frac := float64(offset%60) / 60

	ind.Visible = true
	ind.Percent = bounds[idx] + frac*(bounds[idx+1]-bounds[idx])
	return ind
}
