package schedule

import (
	"roomboard/models"
	"roomboard/utils"

	"go.uber.org/zap"
)

// Grid lays out one row per room and one cell per hour slot, each cell
// holding the positioned blocks for bookings intersecting that hour.
// Empty rooms or bookings yield an empty grid, not an error. Bookings with
// malformed times are dropped with a single warning per build; the board
// must keep rendering on bad upstream data.
func (s *DefaultBoardService) Grid(snap models.Snapshot, measuredBounds []float64) models.Grid {
	slots := s.Window.Slots()
	bookings := s.validBookings(snap.Bookings)

	rows := make([]models.GridRow, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		cells := make([]models.GridCell, 0, len(slots))
		for _, hour := range slots {
			intervals, err := BookingsForHour(room.Name, hour, bookings)
			if err != nil {
				// Unreachable after validBookings, but never panic the render.
				continue
			}
			hourStart, _ := utils.TimeToMinutes(hour)
			blocks := make([]models.BlockLayout, 0, len(intervals))
			for i, ci := range intervals {
				left, width := layoutPercents(ci, hourStart)
				blocks = append(blocks, models.BlockLayout{
					Key:          BlockKey(room.Name, ci.Booking.Start, ci.Booking.End, hour, i),
					Room:         room.Name,
					Start:        ci.Booking.Start,
					End:          ci.Booking.End,
					Color:        room.Color,
					LeftPercent:  left,
					WidthPercent: width,
				})
			}
			cells = append(cells, models.GridCell{Hour: hour, Blocks: blocks})
		}
		rows = append(rows, models.GridRow{Room: room, Cells: cells})
	}

	return models.Grid{
		Slots:           slots,
		Rows:            rows,
		ColumnBounds:    s.columnBounds(measuredBounds),
		SnapshotVersion: snap.Version,
		FetchedAt:       snap.FetchedAt,
	}
}

// VisibleBlockKeys enumerates the keys of every block the grid would
// render for the snapshot. The animator picks its targets from this set.
func (s *DefaultBoardService) VisibleBlockKeys(snap models.Snapshot) []string {
	slots := s.Window.Slots()
	bookings := s.validBookings(snap.Bookings)

	var keys []string
	for _, room := range snap.Rooms {
		for _, hour := range slots {
			intervals, err := BookingsForHour(room.Name, hour, bookings)
			if err != nil {
				continue
			}
			for i, ci := range intervals {
				keys = append(keys, BlockKey(room.Name, ci.Booking.Start, ci.Booking.End, hour, i))
			}
		}
	}
	return keys
}

// validBookings filters out bookings whose times do not parse. One warning
// per build keeps the log quiet while the defect persists upstream.
func (s *DefaultBoardService) validBookings(bookings []models.Booking) []models.Booking {
	valid := bookings[:0:0]
	dropped := 0
	for _, b := range bookings {
		if _, err := utils.TimeToMinutes(b.Start); err != nil {
			dropped++
			continue
		}
		if _, err := utils.TimeToMinutes(b.End); err != nil {
			dropped++
			continue
		}
		valid = append(valid, b)
	}
	if dropped > 0 && s.Logger != nil {
		s.Logger.Warn("Dropped bookings with malformed times", zap.Int("count", dropped))
	}
	return valid
}

// columnBounds validates the display client's measured boundary percents,
// falling back to the window's nominal bounds when they are unusable.
func (s *DefaultBoardService) columnBounds(measured []float64) []float64 {
	if len(measured) != s.Window.SlotCount+1 {
		return s.Window.NominalColumnBounds()
	}
	for i := 1; i < len(measured); i++ {
		if measured[i] < measured[i-1] {
			return s.Window.NominalColumnBounds()
		}
	}
	return measured
}
