package models

import "time"

// ClampedInterval is a booking's intersection with a single hour slot,
// both bounds in minutes from midnight and clamped into the slot window.
// Derived per render, never stored.
type ClampedInterval struct {
	Booking     Booking `json:"booking"`
	StartMinute int     `json:"startMinute"`
	EndMinute   int     `json:"endMinute"`
}

// BlockLayout positions a clamped interval inside its hour cell as
// percentages of the cell width. WidthPercent carries the minimum-width
// floor so very short bookings stay visible.
type BlockLayout struct {
	Key          string  `json:"key"`
	Room         string  `json:"room"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Color        string  `json:"color"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// GridCell is one room × hour intersection holding zero or more blocks.
type GridCell struct {
	Hour   string        `json:"hour"`
	Blocks []BlockLayout `json:"blocks"`
}

// GridRow is one room's full row of hour cells.
type GridRow struct {
	Room  Room       `json:"room"`
	Cells []GridCell `json:"cells"`
}

// Grid is the complete render-ready layout: one row per room, one column
// per hour slot, plus the nominal column boundary percents the
// now-indicator interpolates between.
type Grid struct {
	Slots           []string  `json:"slots"`
	Rows            []GridRow `json:"rows"`
	ColumnBounds    []float64 `json:"columnBounds"`
	SnapshotVersion uint64    `json:"snapshotVersion"`
	FetchedAt       time.Time `json:"fetchedAt"`
}

// NowIndicator is the moving current-time marker. Percent is a horizontal
// offset across the slot columns; it is meaningless when Visible is false.
type NowIndicator struct {
	Visible    bool    `json:"visible"`
	Percent    float64 `json:"percent"`
	ClockLabel string  `json:"clockLabel"`
	NowMinutes int     `json:"nowMinutes"`
}
