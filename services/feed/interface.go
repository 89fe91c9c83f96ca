package feed

import (
	"time"

	"roomboard/models"
)

// SnapshotSource is what board consumers see of the feed: the current
// last-known-good snapshot and the outcome of the most recent poll.
type SnapshotSource interface {
	Current() models.Snapshot
	Status() PollStatus
}

// PollStatus reports the most recent poll attempt. A failed poll leaves
// the snapshot untouched, so OK=false can coexist with usable data.
type PollStatus struct {
	OK        bool      `json:"ok"`
	At        time.Time `json:"at"`
	Error     string    `json:"error,omitempty"`
	FromCache bool      `json:"fromCache,omitempty"`
}
