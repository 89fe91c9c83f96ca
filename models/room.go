package models

// Room represents a bookable meeting room as published by the upstream feed.
// The name doubles as the unique key; the color is a display hint only.
// Rooms are immutable once fetched and replaced wholesale on the next poll.
type Room struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
