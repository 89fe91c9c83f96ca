package schedule

import "time"

// Clock abstracts the current instant so the now-indicator can be driven
// by a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock returns a clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// FixedClock returns a clock that always reports the same instant.
func FixedClock(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// NowMinutes converts the clock's current instant into minutes since
// midnight in the given reference zone. The zone is explicit so the board
// shows office time regardless of where the process runs.
func NowMinutes(clock Clock, zone *time.Location) int {
	now := clock.Now().In(zone)
	return now.Hour()*60 + now.Minute()
}
