package models

// Booking is an occupied interval in a room, keyed by room name.
// Start and End are wall-clock "HH:MM" strings; start < end is assumed
// upstream and not validated here. A booking referencing an unknown room
// is never rendered but is not rejected either.
type Booking struct {
	Room  string `json:"room"`
	Start string `json:"start"`
	End   string `json:"end"`
}
