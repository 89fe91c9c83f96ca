package models

import "time"

// Snapshot is one internally-consistent poll result: rooms and bookings
// fetched together, published together. Consumers always read a whole
// snapshot, never rooms from one poll mixed with bookings from another.
type Snapshot struct {
	Rooms     []Room    `json:"rooms"`
	Bookings  []Booking `json:"bookings"`
	Version   uint64    `json:"version"`
	FetchedAt time.Time `json:"fetchedAt"`
}
